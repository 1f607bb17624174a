package catalog

import "slices"

// ModuleGroup is one module's slice of the catalog: the module name plus
// its items in catalog order. Derived, never stored.
type ModuleGroup struct {
	Name  string
	Items []ContentItem
}

// Catalog holds one subject's content items with precomputed indices.
// Module order and in-module item order come from the authoring sequence
// exactly as supplied; the catalog never re-sorts. The flattened sequence
// every consumer shares is the grouped one: modules in first-seen order,
// items within each module in catalog order.
type Catalog struct {
	items  []ContentItem
	flat   []ContentItem
	groups []ModuleGroup
	byID   map[string]*ContentItem
	flatAt map[string]int
}

// New builds a Catalog from items in authoring order. Modules are grouped
// by first appearance; item order within a module is preserved. Items are
// normalized (blank quiz options dropped) but not validated; call Validate
// to surface authoring defects.
func New(items []ContentItem) *Catalog {
	c := &Catalog{
		items:  normalize(items),
		byID:   make(map[string]*ContentItem, len(items)),
		flatAt: make(map[string]int, len(items)),
	}

	groupIdx := make(map[string]int)
	for i := range c.items {
		it := &c.items[i]
		gi, ok := groupIdx[it.Module]
		if !ok {
			gi = len(c.groups)
			groupIdx[it.Module] = gi
			c.groups = append(c.groups, ModuleGroup{Name: it.Module})
		}
		c.groups[gi].Items = append(c.groups[gi].Items, *it)
		c.byID[it.ID] = it
	}

	// Grouped flattening. With interleaved authoring (W1, W1, W2, W1)
	// this differs from the raw sequence, and it is the order unlock,
	// selection and navigation must all agree on.
	c.flat = make([]ContentItem, 0, len(c.items))
	for _, g := range c.groups {
		for _, it := range g.Items {
			c.flatAt[it.ID] = len(c.flat)
			c.flat = append(c.flat, it)
		}
	}
	return c
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns all items in the grouped flattened order: modules in
// first-seen order, items within each module in catalog order.
func (c *Catalog) Items() []ContentItem {
	return slices.Clone(c.flat)
}

// Modules returns the module groups in first-seen order.
func (c *Catalog) Modules() []ModuleGroup {
	out := make([]ModuleGroup, len(c.groups))
	for i, g := range c.groups {
		out[i] = ModuleGroup{Name: g.Name, Items: slices.Clone(g.Items)}
	}
	return out
}

// Item returns the item with the given id, or false if absent.
func (c *Catalog) Item(id string) (ContentItem, bool) {
	it, ok := c.byID[id]
	if !ok {
		return ContentItem{}, false
	}
	return *it, true
}

// FlatIndex returns the item's position in the grouped flattened
// sequence.
func (c *Catalog) FlatIndex(id string) (int, bool) {
	i, ok := c.flatAt[id]
	return i, ok
}

// normalize drops blank options from quiz questions. Catalog authors
// occasionally leave empty option rows behind; tolerating them is confined
// to ingestion so the grader never sees them.
func normalize(items []ContentItem) []ContentItem {
	out := slices.Clone(items)
	for i := range out {
		if out[i].Kind != KindQuiz {
			continue
		}
		qs := slices.Clone(out[i].Questions)
		for j := range qs {
			var kept []string
			for _, opt := range qs[j].Options {
				if opt != "" {
					kept = append(kept, opt)
				}
			}
			qs[j].Options = kept
		}
		out[i].Questions = qs
	}
	return out
}
