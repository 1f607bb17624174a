package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// InvalidItemError reports a catalog-authoring defect for one item.
type InvalidItemError struct {
	ItemID   string
	Problems []string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid catalog item %q: %s", e.ItemID, strings.Join(e.Problems, "; "))
}

// Validate performs structural checks on the catalog's items. Quiz items
// must have at least one question, and every question's correct option
// must equal one of its options by exact value. Returns the first
// defective item's error, or nil. Authoring defects are surfaced, never
// silently skipped.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.items))
	for _, it := range c.items {
		var problems []string

		if it.ID == "" {
			problems = append(problems, "empty id")
		}
		if seen[it.ID] {
			problems = append(problems, "duplicate id")
		}
		seen[it.ID] = true

		switch it.Kind {
		case KindLesson:
		case KindVideo:
			if it.VideoRef == "" {
				problems = append(problems, "video item without video_ref")
			}
		case KindQuiz:
			if len(it.Questions) == 0 {
				problems = append(problems, "quiz without questions")
			}
			for i, q := range it.Questions {
				if len(q.Options) == 0 {
					problems = append(problems, fmt.Sprintf("question %d has no options", i))
					continue
				}
				if !slices.Contains(q.Options, q.CorrectOption) {
					problems = append(problems, fmt.Sprintf("question %d: correct option %q not among options", i, q.CorrectOption))
				}
			}
		default:
			problems = append(problems, fmt.Sprintf("unknown kind %q", it.Kind))
		}

		if len(problems) > 0 {
			return &InvalidItemError{ItemID: it.ID, Problems: problems}
		}
	}
	return nil
}
