// Package engine wires the progression components into the single
// surface consumed by presentation: per-item accessibility, the active
// selection, completion transitions, and quiz outcomes.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/completion"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/nav"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/progress"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/quiz"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/selection"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/unlock"
)

// NotFoundError indicates an operation on an item id absent from the
// subject's catalog.
type NotFoundError struct {
	ItemID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("content item not found: %q", e.ItemID)
}

// Options carries the collaborators an Engine is built from.
type Options struct {
	Subject  string
	Catalog  *catalog.Catalog
	Store    progress.Store
	Recorder completion.Recorder
	FAQs     selection.FAQProvider
}

// Engine is the per-subject orchestrator. It is the single writer of the
// subject's progress record; reads hand out snapshots.
type Engine struct {
	mu      sync.Mutex
	subject string
	cat     *catalog.Catalog
	store   progress.Store
	rec     *progress.Record

	completer *completion.Engine
	grader    *quiz.Grader
	sel       *selection.Controller
}

// New validates the catalog, loads the subject's persisted progress and
// returns a ready engine.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if err := opts.Catalog.Validate(); err != nil {
		return nil, err
	}

	rec, err := opts.Store.Load(ctx, opts.Subject)
	if err != nil {
		return nil, fmt.Errorf("load progress for %q: %w", opts.Subject, err)
	}

	completer := completion.NewEngine(opts.Subject, opts.Store, opts.Recorder)
	return &Engine{
		subject:   opts.Subject,
		cat:       opts.Catalog,
		store:     opts.Store,
		rec:       rec,
		completer: completer,
		grader:    quiz.NewGrader(opts.Subject, opts.Store, completer),
		sel:       selection.NewController(opts.FAQs),
	}, nil
}

// Catalog returns the subject's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Progress returns a snapshot of the current record for presentation.
func (e *Engine) Progress() *progress.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec.Snapshot()
}

func (e *Engine) item(id string) (catalog.ContentItem, error) {
	it, ok := e.cat.Item(id)
	if !ok {
		return catalog.ContentItem{}, &NotFoundError{ItemID: id}
	}
	return it, nil
}

// Acknowledge completes a lesson via the learner's explicit
// acknowledgement action.
func (e *Engine) Acknowledge(ctx context.Context, itemID string) error {
	return e.complete(ctx, itemID, completion.TriggerManual)
}

// VideoEnded completes a video in response to its media "ended" event.
func (e *Engine) VideoEnded(ctx context.Context, itemID string) error {
	return e.complete(ctx, itemID, completion.TriggerMediaEnd)
}

func (e *Engine) complete(ctx context.Context, itemID string, trig completion.Trigger) error {
	it, err := e.item(itemID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completer.Complete(ctx, e.rec, it, trig)
}

// SubmitQuiz grades one quiz attempt. Passing attempts complete the item
// through the quiz-pass trigger before the result is recorded.
func (e *Engine) SubmitQuiz(ctx context.Context, itemID string, answers map[int]string) (progress.Result, error) {
	it, err := e.item(itemID)
	if err != nil {
		return progress.Result{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grader.Submit(ctx, e.rec, it, answers)
}

// RetakeQuiz resets a quiz's stored answers and result so it can be
// attempted again.
func (e *Engine) RetakeQuiz(ctx context.Context, itemID string) error {
	it, err := e.item(itemID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grader.Retake(ctx, e.rec, it)
}

// IsUnlocked reports accessibility for the item at index within module.
func (e *Engine) IsUnlocked(module string, index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return unlock.IsUnlocked(e.cat.Modules(), e.rec.Completed, module, index)
}

// Navigation resolves the previous/next items around the active item.
func (e *Engine) Navigation(activeID string) (nav.Neighbors, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, ok := nav.Resolve(e.cat, activeID, e.rec)
	if !ok {
		return nav.Neighbors{}, &NotFoundError{ItemID: activeID}
	}
	return n, nil
}

// PickInitial returns the item to display on load, or nil for an empty
// catalog.
func (e *Engine) PickInitial() *catalog.ContentItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return selection.PickInitial(e.cat, e.rec)
}

// Select switches the active item, fetching FAQs for lessons and videos.
func (e *Engine) Select(ctx context.Context, itemID string) (selection.Selection, error) {
	it, err := e.item(itemID)
	if err != nil {
		return selection.Selection{}, err
	}
	return e.sel.Select(ctx, it)
}

// ActiveSelection returns the current selection, if any.
func (e *Engine) ActiveSelection() *selection.Selection {
	return e.sel.Active()
}

// SubmitQuestion forwards a learner FAQ question to the platform.
func (e *Engine) SubmitQuestion(ctx context.Context, itemID, text string) error {
	if _, err := e.item(itemID); err != nil {
		return err
	}
	return e.sel.SubmitQuestion(ctx, itemID, text)
}
