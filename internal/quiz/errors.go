package quiz

import (
	"fmt"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
)

// IncompleteAnswersError rejects a submission that does not cover every
// question. Missing answers are never silently scored as wrong.
type IncompleteAnswersError struct {
	ItemID  string
	Missing []int
}

func (e *IncompleteAnswersError) Error() string {
	return fmt.Sprintf("quiz %q submitted with unanswered questions %v", e.ItemID, e.Missing)
}

// NotQuizError indicates a grading operation on a non-quiz item.
type NotQuizError struct {
	ItemID string
	Kind   catalog.Kind
}

func (e *NotQuizError) Error() string {
	return fmt.Sprintf("item %q is a %s, not a quiz", e.ItemID, e.Kind)
}
