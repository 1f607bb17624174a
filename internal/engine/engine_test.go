package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/progress"
)

type fakeRecorder struct {
	calls int
	err   error
}

func (f *fakeRecorder) RecordCompletion(_ context.Context, _ string) error {
	f.calls++
	return f.err
}

type fakeFAQs struct {
	listCalls []string
}

func (f *fakeFAQs) ListFAQs(_ context.Context, itemID string) ([]catalog.FAQ, error) {
	f.listCalls = append(f.listCalls, itemID)
	return nil, nil
}

func (f *fakeFAQs) SubmitQuestion(_ context.Context, _, _ string) error { return nil }

// Scenario catalog: W1 holds a lesson and a four-question quiz, W2 a video.
func scenarioCatalog() *catalog.Catalog {
	q := func(text string) catalog.Question {
		return catalog.Question{Text: text, Options: []string{"a", "b", "c"}, CorrectOption: "a"}
	}
	return catalog.New([]catalog.ContentItem{
		{ID: "L1", Title: "Basics", Module: "W1", Kind: catalog.KindLesson},
		{ID: "Q1", Title: "Checkpoint", Module: "W1", Kind: catalog.KindQuiz,
			Questions: []catalog.Question{q("1"), q("2"), q("3"), q("4")}},
		{ID: "V1", Title: "Demo", Module: "W2", Kind: catalog.KindVideo, VideoRef: "demo.mp4"},
	})
}

func newTestEngine(t *testing.T) (*Engine, *fakeRecorder, *fakeFAQs) {
	t.Helper()
	fr := &fakeRecorder{}
	ff := &fakeFAQs{}
	eng, err := New(context.Background(), Options{
		Subject:  "algebra",
		Catalog:  scenarioCatalog(),
		Store:    progress.NewMemoryStore(),
		Recorder: fr,
		FAQs:     ff,
	})
	if err != nil {
		t.Fatal(err)
	}
	return eng, fr, ff
}

func TestEngine_ProgressionScenario(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	// Only L1 is open at the start.
	if !eng.IsUnlocked("W1", 0) || eng.IsUnlocked("W1", 1) || eng.IsUnlocked("W2", 0) {
		t.Fatal("fresh learner should see only W1[0] unlocked")
	}

	// Reading L1 opens the quiz.
	if err := eng.Acknowledge(ctx, "L1"); err != nil {
		t.Fatal(err)
	}
	if !eng.IsUnlocked("W1", 1) {
		t.Error("Q1 locked after L1 completed")
	}
	if eng.IsUnlocked("W2", 0) {
		t.Error("W2 opened before Q1 passed")
	}

	// Failing the quiz (2/4 = 50%) changes nothing downstream.
	res, err := eng.SubmitQuiz(ctx, "Q1", map[int]string{0: "a", 1: "a", 2: "b", 3: "b"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Passed {
		t.Error("50% should fail")
	}
	if eng.IsUnlocked("W2", 0) {
		t.Error("failed quiz unlocked W2")
	}
	if eng.Progress().IsCompleted("Q1") {
		t.Error("failed quiz marked completed")
	}

	// Retake then pass with 3/4 = 75%.
	if err := eng.RetakeQuiz(ctx, "Q1"); err != nil {
		t.Fatal(err)
	}
	res, err = eng.SubmitQuiz(ctx, "Q1", map[int]string{0: "a", 1: "a", 2: "a", 3: "b"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Passed {
		t.Error("75% should pass")
	}
	if !eng.IsUnlocked("W2", 0) {
		t.Error("passing Q1 should unlock W2")
	}

	// The video completes on its media-end event.
	if err := eng.VideoEnded(ctx, "V1"); err != nil {
		t.Fatal(err)
	}
	if !eng.Progress().IsCompleted("V1") {
		t.Error("video not completed after media end")
	}
}

func TestEngine_PickInitialSkipsCompleted(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if got := eng.PickInitial(); got == nil || got.ID != "L1" {
		t.Errorf("initial pick = %v, want L1", got)
	}
	if err := eng.Acknowledge(ctx, "L1"); err != nil {
		t.Fatal(err)
	}
	// L1 complete, Q1 unlocked-but-incomplete: Q1 is next.
	if got := eng.PickInitial(); got == nil || got.ID != "Q1" {
		t.Errorf("pick after L1 = %v, want Q1", got)
	}
}

func TestEngine_RetakeHidesPassUntilResubmission(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if err := eng.Acknowledge(ctx, "L1"); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.SubmitQuiz(ctx, "Q1", map[int]string{0: "a", 1: "a", 2: "a", 3: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := eng.RetakeQuiz(ctx, "Q1"); err != nil {
		t.Fatal(err)
	}

	// Completion survives, so W2 stays open...
	if !eng.Progress().IsCompleted("Q1") {
		t.Error("retake revoked completion")
	}
	if !eng.IsUnlocked("W2", 0) {
		t.Error("retake locked W2 again")
	}
	// ...but navigation treats the quiz as unpassed until resubmission.
	n, err := eng.Navigation("Q1")
	if err != nil {
		t.Fatal(err)
	}
	if n.CanAdvance {
		t.Error("retaken quiz should not be advanceable without a stored pass")
	}
}

func TestEngine_NotFound(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	var nfe *NotFoundError
	if err := eng.Acknowledge(ctx, "ghost"); !errors.As(err, &nfe) {
		t.Errorf("Acknowledge error = %v, want *NotFoundError", err)
	}
	if _, err := eng.SubmitQuiz(ctx, "ghost", nil); !errors.As(err, &nfe) {
		t.Errorf("SubmitQuiz error = %v, want *NotFoundError", err)
	}
	if _, err := eng.Navigation("ghost"); !errors.As(err, &nfe) {
		t.Errorf("Navigation error = %v, want *NotFoundError", err)
	}
}

func TestEngine_SelectTriggersFAQOnlyForLessonAndVideo(t *testing.T) {
	eng, _, ff := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Select(ctx, "L1"); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Select(ctx, "Q1"); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Select(ctx, "V1"); err != nil {
		t.Fatal(err)
	}

	if len(ff.listCalls) != 2 || ff.listCalls[0] != "L1" || ff.listCalls[1] != "V1" {
		t.Errorf("FAQ fetches = %v, want [L1 V1]", ff.listCalls)
	}
	if eng.ActiveSelection() == nil || eng.ActiveSelection().Item.ID != "V1" {
		t.Error("active selection should be the last selected item")
	}
}

func TestEngine_Outline(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if err := eng.Acknowledge(ctx, "L1"); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.SubmitQuiz(ctx, "Q1", map[int]string{0: "a", 1: "a", 2: "b", 3: "b"}); err != nil {
		t.Fatal(err)
	}

	out := eng.Outline()
	if len(out) != 2 || out[0].Name != "W1" || out[1].Name != "W2" {
		t.Fatalf("outline modules = %+v", out)
	}

	w1 := out[0].Items
	if !w1[0].Completed || !w1[0].Unlocked {
		t.Error("L1 should be completed and unlocked")
	}
	if w1[1].Result == nil || w1[1].Result.Score != 50 || w1[1].Result.Passed {
		t.Errorf("Q1 status = %+v, want stored failing result", w1[1].Result)
	}
	if out[1].Items[0].Unlocked {
		t.Error("V1 should stay locked behind the failed quiz")
	}
}

func TestEngine_NewRejectsInvalidCatalog(t *testing.T) {
	bad := catalog.New([]catalog.ContentItem{
		{ID: "q", Module: "M", Kind: catalog.KindQuiz, Questions: []catalog.Question{
			{Text: "?", Options: []string{"a"}, CorrectOption: "z"},
		}},
	})
	_, err := New(context.Background(), Options{
		Subject:  "s",
		Catalog:  bad,
		Store:    progress.NewMemoryStore(),
		Recorder: &fakeRecorder{},
	})
	if err == nil {
		t.Error("New should reject a defective catalog")
	}
}
