package catalog

import (
	"errors"
	"testing"
)

func sampleItems() []ContentItem {
	return []ContentItem{
		{ID: "L1", Title: "Intro", Module: "W1", Kind: KindLesson},
		{ID: "Q1", Title: "Check", Module: "W1", Kind: KindQuiz, Questions: []Question{
			{Text: "1+1?", Options: []string{"2", "3"}, CorrectOption: "2"},
		}},
		{ID: "V1", Title: "Walkthrough", Module: "W2", Kind: KindVideo, VideoRef: "v1.mp4"},
		{ID: "L2", Title: "Wrap", Module: "W1", Kind: KindLesson},
	}
}

func TestNew_GroupsByFirstSeenOrder(t *testing.T) {
	c := New(sampleItems())

	mods := c.Modules()
	if len(mods) != 2 {
		t.Fatalf("Modules() returned %d groups, want 2", len(mods))
	}
	if mods[0].Name != "W1" || mods[1].Name != "W2" {
		t.Errorf("module order = %s, %s; want W1, W2", mods[0].Name, mods[1].Name)
	}

	// L2 belongs to W1 even though it appears after V1 in authoring order.
	wantW1 := []string{"L1", "Q1", "L2"}
	for i, id := range wantW1 {
		if mods[0].Items[i].ID != id {
			t.Errorf("W1[%d] = %s, want %s", i, mods[0].Items[i].ID, id)
		}
	}
}

func TestItems_GroupedFlattening(t *testing.T) {
	c := New(sampleItems())

	// L2 is authored after V1 but belongs to W1, so the grouped
	// flattening pulls it ahead of W2's items.
	want := []string{"L1", "Q1", "L2", "V1"}
	items := c.Items()
	for i, id := range want {
		if items[i].ID != id {
			t.Errorf("Items()[%d] = %s, want %s", i, items[i].ID, id)
		}
	}

	for i, id := range want {
		fi, ok := c.FlatIndex(id)
		if !ok || fi != i {
			t.Errorf("FlatIndex(%s) = (%d, %v), want (%d, true)", id, fi, ok, i)
		}
	}
	if _, ok := c.FlatIndex("nope"); ok {
		t.Error("FlatIndex of unknown id should report not found")
	}
}

func TestNormalize_DropsBlankOptions(t *testing.T) {
	c := New([]ContentItem{
		{ID: "q", Module: "M", Kind: KindQuiz, Questions: []Question{
			{Text: "?", Options: []string{"", "a", "", "b"}, CorrectOption: "a"},
		}},
	})

	it, _ := c.Item("q")
	got := it.Questions[0].Options
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("options after normalize = %v, want [a b]", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		items   []ContentItem
		wantErr bool
	}{
		{"valid", sampleItems(), false},
		{"correct option missing", []ContentItem{
			{ID: "q", Module: "M", Kind: KindQuiz, Questions: []Question{
				{Text: "?", Options: []string{"a", "b"}, CorrectOption: "c"},
			}},
		}, true},
		{"quiz without questions", []ContentItem{
			{ID: "q", Module: "M", Kind: KindQuiz},
		}, true},
		{"video without ref", []ContentItem{
			{ID: "v", Module: "M", Kind: KindVideo},
		}, true},
		{"duplicate ids", []ContentItem{
			{ID: "a", Module: "M", Kind: KindLesson},
			{ID: "a", Module: "M", Kind: KindLesson},
		}, true},
		{"unknown kind", []ContentItem{
			{ID: "x", Module: "M", Kind: Kind("podcast")},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.items).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ie *InvalidItemError
				if !errors.As(err, &ie) {
					t.Errorf("error %v is not *InvalidItemError", err)
				}
			}
		})
	}
}
