// Package nav computes previous/next items relative to the active item.
package nav

import (
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/progress"
)

// Neighbors is the navigation surface around the active item. Next is
// reported even when CanAdvance is false; callers decide whether to
// disable the control.
type Neighbors struct {
	Previous   *catalog.ContentItem
	Next       *catalog.ContentItem
	CanAdvance bool
}

// Resolve walks the fully flattened catalog sequence (modules in
// first-seen order, items in catalog order) around activeID. Module
// boundaries do not gate previous/next; only unlock eligibility cares
// about them. CanAdvance is true for a completed lesson/video, or for a
// quiz whose stored result is a pass. Returns ok=false if activeID is
// not in the catalog.
func Resolve(cat *catalog.Catalog, activeID string, rec *progress.Record) (Neighbors, bool) {
	idx, ok := cat.FlatIndex(activeID)
	if !ok {
		return Neighbors{}, false
	}

	items := cat.Items()
	var n Neighbors
	if idx > 0 {
		n.Previous = &items[idx-1]
	}
	if idx < len(items)-1 {
		n.Next = &items[idx+1]
	}

	active := items[idx]
	switch active.Kind {
	case catalog.KindQuiz:
		res, ok := rec.Result(active.ID)
		n.CanAdvance = ok && res.Passed
	default:
		n.CanAdvance = rec.IsCompleted(active.ID)
	}
	return n, true
}
