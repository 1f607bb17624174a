// Package unlock decides whether a learner may access a content item.
// Progression is a strictly linear chain across the flattened
// module-item sequence: each item unlocks when its predecessor is
// completed, and a module's first item unlocks when the previous
// module's last item is completed.
package unlock

import "github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"

// IsUnlocked reports whether the item at index within the named module is
// currently accessible given the completed set. Pure: identical inputs
// always produce identical results, and the currently selected item plays
// no part.
func IsUnlocked(groups []catalog.ModuleGroup, completed map[string]bool, module string, index int) bool {
	for mi, g := range groups {
		if g.Name != module {
			continue
		}
		if index < 0 || index >= len(g.Items) {
			return false
		}

		// First item of the first module is always open.
		if index == 0 && mi == 0 {
			return true
		}

		// Not first in its module: previous item in the same module
		// must be completed.
		if index > 0 {
			return completed[g.Items[index-1].ID]
		}

		// First item of a later module: the previous module's last
		// item must be completed.
		prev := groups[mi-1]
		if len(prev.Items) == 0 {
			return false
		}
		return completed[prev.Items[len(prev.Items)-1].ID]
	}
	return false
}

// Accessible returns the unlock state for every item in the catalog,
// keyed by item id.
func Accessible(groups []catalog.ModuleGroup, completed map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, g := range groups {
		for i, it := range g.Items {
			out[it.ID] = IsUnlocked(groups, completed, g.Name, i)
		}
	}
	return out
}
