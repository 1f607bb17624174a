package engine

import (
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/progress"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/unlock"
)

// ItemStatus is one catalog item annotated with the learner's state.
// Passed reflects the stored quiz result only, so a retaken quiz shows
// unpassed until resubmission even when its completion is retained.
type ItemStatus struct {
	Item      catalog.ContentItem
	Unlocked  bool
	Completed bool
	Result    *progress.Result
}

// ModuleStatus is one module's items with their learner state.
type ModuleStatus struct {
	Name  string
	Items []ItemStatus
}

// Outline returns the full subject view consumed by presentation:
// modules in first-seen order, items in catalog order, each with unlock,
// completion and quiz state.
func (e *Engine) Outline() []ModuleStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	groups := e.cat.Modules()
	accessible := unlock.Accessible(groups, e.rec.Completed)
	out := make([]ModuleStatus, 0, len(groups))
	for _, g := range groups {
		ms := ModuleStatus{Name: g.Name, Items: make([]ItemStatus, 0, len(g.Items))}
		for _, it := range g.Items {
			st := ItemStatus{
				Item:      it,
				Unlocked:  accessible[it.ID],
				Completed: e.rec.IsCompleted(it.ID),
			}
			if res, ok := e.rec.Result(it.ID); ok {
				r := res
				st.Result = &r
			}
			ms.Items = append(ms.Items, st)
		}
		out = append(out, ms)
	}
	return out
}
