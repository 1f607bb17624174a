// Package completion transitions content items into the completed state.
// The transition is confirmed-then-written: the platform recorder must
// acknowledge the completion before any local state changes.
package completion

import (
	"context"
	"fmt"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/progress"
)

// Recorder is the platform collaborator that durably records a
// completion server-side. Instructor-facing aggregates depend on this
// confirmed state, so the engine never completes optimistically.
type Recorder interface {
	RecordCompletion(ctx context.Context, itemID string) error
}

// Trigger identifies how a completion was initiated. Each content kind
// completes through exactly one trigger.
type Trigger int

const (
	TriggerManual   Trigger = iota // learner acknowledgement on a lesson
	TriggerMediaEnd                // "ended" event on a video
	TriggerQuizPass                // grader submission meeting the pass threshold
)

func (t Trigger) String() string {
	switch t {
	case TriggerManual:
		return "manual acknowledgement"
	case TriggerMediaEnd:
		return "media end"
	case TriggerQuizPass:
		return "quiz pass"
	default:
		return "unknown trigger"
	}
}

// TriggerFor returns the only trigger valid for a content kind.
func TriggerFor(k catalog.Kind) Trigger {
	switch k {
	case catalog.KindVideo:
		return TriggerMediaEnd
	case catalog.KindQuiz:
		return TriggerQuizPass
	default:
		return TriggerManual
	}
}

// Engine applies completion transitions for one subject.
type Engine struct {
	subject  string
	store    progress.Store
	recorder Recorder
}

// NewEngine creates a completion engine bound to one subject's store.
func NewEngine(subject string, store progress.Store, recorder Recorder) *Engine {
	return &Engine{subject: subject, store: store, recorder: recorder}
}

// Complete marks an item completed. Already-completed items are a no-op
// success with no recorder call. Otherwise the recorder must confirm
// first; only then is the completed set mutated and persisted. A recorder
// failure (including context cancellation mid-flight) leaves local
// progress untouched and returns a retryable *RemoteConfirmationError.
func (e *Engine) Complete(ctx context.Context, rec *progress.Record, item catalog.ContentItem, trig Trigger) error {
	if want := TriggerFor(item.Kind); trig != want {
		return &WrongTriggerError{ItemID: item.ID, Kind: item.Kind, Trigger: trig}
	}

	if rec.IsCompleted(item.ID) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return &RemoteConfirmationError{ItemID: item.ID, Err: err}
	}

	if err := e.recorder.RecordCompletion(ctx, item.ID); err != nil {
		return &RemoteConfirmationError{ItemID: item.ID, Err: err}
	}

	// Confirmed server-side; the in-memory set now reflects that truth
	// even if the local write below fails.
	rec.Completed[item.ID] = true
	if err := e.store.MarkCompleted(ctx, e.subject, item.ID); err != nil {
		return fmt.Errorf("persist completion of %q: %w", item.ID, err)
	}
	return nil
}
