// Package quiz scores quiz attempts and applies the pass gate.
package quiz

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/completion"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/progress"
)

// PassThreshold is the score percentage required for a quiz to count as
// completed.
const PassThreshold = 70.0

// Grader scores submissions for one subject and records the outcome.
type Grader struct {
	subject   string
	store     progress.Store
	completer *completion.Engine

	now       func() time.Time
	attemptID func() string
}

// NewGrader creates a grader bound to one subject's store and completion
// engine.
func NewGrader(subject string, store progress.Store, completer *completion.Engine) *Grader {
	return &Grader{
		subject:   subject,
		store:     store,
		completer: completer,
		now:       time.Now,
		attemptID: func() string { return uuid.NewString() },
	}
}

// Submit grades one attempt for a quiz item. answers maps question index
// to the chosen option text and must cover every question; an incomplete
// map is rejected with *IncompleteAnswersError. Scoring is deterministic:
// exact string equality against each question's correct option,
// score = 100 * correct / total, passed at PassThreshold.
//
// Answers are persisted as attempt data regardless of outcome. A passing
// attempt must be confirmed by the completion engine before its result is
// recorded, so a stored passed result always implies confirmed
// completion; a failing attempt's result is recorded directly.
func (g *Grader) Submit(ctx context.Context, rec *progress.Record, item catalog.ContentItem, answers map[int]string) (progress.Result, error) {
	if item.Kind != catalog.KindQuiz {
		return progress.Result{}, &NotQuizError{ItemID: item.ID, Kind: item.Kind}
	}
	// Catalog validation rejects question-less quizzes, but the grader
	// is callable standalone and 0/0 would score as NaN.
	if len(item.Questions) == 0 {
		return progress.Result{}, &catalog.InvalidItemError{ItemID: item.ID, Problems: []string{"quiz without questions"}}
	}

	var missing []int
	for i := range item.Questions {
		if _, ok := answers[i]; !ok {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return progress.Result{}, &IncompleteAnswersError{ItemID: item.ID, Missing: missing}
	}

	correct := 0
	for i, q := range item.Questions {
		if answers[i] == q.CorrectOption {
			correct++
		}
	}
	total := len(item.Questions)

	res := progress.Result{
		AttemptID:   g.attemptID(),
		Correct:     correct,
		Total:       total,
		Score:       100 * float64(correct) / float64(total),
		SubmittedAt: g.now(),
	}
	res.Passed = res.Score >= PassThreshold

	for i := range item.Questions {
		choice := answers[i]
		if err := g.store.SaveAnswer(ctx, g.subject, item.ID, i, choice); err != nil {
			return progress.Result{}, err
		}
		rec.Answers[progress.AnswerKey(item.ID, i)] = choice
	}

	if res.Passed {
		if err := g.completer.Complete(ctx, rec, item, completion.TriggerQuizPass); err != nil {
			// Not confirmed: leave the stored result untouched so a
			// passed result never exists without confirmed completion.
			return progress.Result{}, err
		}
	}

	if err := g.store.SaveResult(ctx, g.subject, item.ID, res); err != nil {
		return progress.Result{}, err
	}
	rec.Results[item.ID] = res

	return res, nil
}

// Retake clears the stored answers and result for one quiz so it can be
// attempted again. Completion earned by a previous pass is kept; only the
// attempt is reset, which hides the passed state until resubmission.
func (g *Grader) Retake(ctx context.Context, rec *progress.Record, item catalog.ContentItem) error {
	if item.Kind != catalog.KindQuiz {
		return &NotQuizError{ItemID: item.ID, Kind: item.Kind}
	}

	if err := g.store.ClearQuiz(ctx, g.subject, item.ID); err != nil {
		return err
	}
	for key := range rec.Answers {
		id, _, ok := progress.ParseAnswerKey(key)
		if ok && id == item.ID {
			delete(rec.Answers, key)
		}
	}
	delete(rec.Results, item.ID)
	return nil
}
