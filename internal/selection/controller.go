// Package selection owns the active content item and the initial pick.
package selection

import (
	"context"
	"fmt"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/progress"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/unlock"
)

// FAQProvider is the platform collaborator serving learner FAQs for
// lesson and video items.
type FAQProvider interface {
	ListFAQs(ctx context.Context, itemID string) ([]catalog.FAQ, error)
	SubmitQuestion(ctx context.Context, itemID, text string) error
}

// Selection is the transient active item plus its fetched FAQs. Never
// persisted.
type Selection struct {
	Item catalog.ContentItem
	FAQs []catalog.FAQ
}

// PickInitial returns the item to display on load: the first item in
// flattened order that is unlocked and not yet completed. If everything
// reachable is done (or nothing is unlocked) it falls back to the very
// first item, and to nil on an empty catalog.
func PickInitial(cat *catalog.Catalog, rec *progress.Record) *catalog.ContentItem {
	groups := cat.Modules()
	for _, g := range groups {
		for i, it := range g.Items {
			if unlock.IsUnlocked(groups, rec.Completed, g.Name, i) && !rec.IsCompleted(it.ID) {
				item := it
				return &item
			}
		}
	}
	items := cat.Items()
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

// Controller tracks the active selection and triggers FAQ fetches when
// the selection lands on a lesson or video.
type Controller struct {
	faqs   FAQProvider
	active *Selection
}

// NewController creates a controller. faqs may be nil, in which case
// selections carry no FAQ list.
func NewController(faqs FAQProvider) *Controller {
	return &Controller{faqs: faqs}
}

// Select switches the active item. For lessons and videos the FAQ list is
// fetched; a fetch failure still switches the selection and is returned
// alongside it. Quizzes never trigger a fetch.
func (c *Controller) Select(ctx context.Context, item catalog.ContentItem) (Selection, error) {
	sel := Selection{Item: item}

	if item.Kind != catalog.KindQuiz && c.faqs != nil {
		faqs, err := c.faqs.ListFAQs(ctx, item.ID)
		if err != nil {
			c.active = &sel
			return sel, fmt.Errorf("fetch FAQs for %q: %w", item.ID, err)
		}
		sel.FAQs = faqs
	}

	c.active = &sel
	return sel, nil
}

// Active returns the current selection, or nil before any Select.
func (c *Controller) Active() *Selection {
	return c.active
}

// SubmitQuestion forwards a learner question for the given item to the
// platform.
func (c *Controller) SubmitQuestion(ctx context.Context, itemID, text string) error {
	if c.faqs == nil {
		return fmt.Errorf("no FAQ provider configured")
	}
	return c.faqs.SubmitQuestion(ctx, itemID, text)
}
