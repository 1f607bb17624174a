package progress

import "context"

// Store persists per-subject progress. Implementations must tolerate a
// subject with no rows (Load returns an empty record) and must only ever
// delete quiz rows per item (retake), never the whole record.
type Store interface {
	// Load reads the full record for a subject. A subject never written
	// before yields an empty record, not an error.
	Load(ctx context.Context, subject string) (*Record, error)

	// MarkCompleted adds an item to the subject's completed set.
	// Idempotent.
	MarkCompleted(ctx context.Context, subject, itemID string) error

	// SaveAnswer upserts the learner's choice for one quiz question.
	SaveAnswer(ctx context.Context, subject, itemID string, questionIdx int, choice string) error

	// SaveResult upserts the latest quiz result for an item.
	SaveResult(ctx context.Context, subject, itemID string, res Result) error

	// ClearQuiz removes all stored answers and the result for one quiz.
	// It never touches the completed set.
	ClearQuiz(ctx context.Context, subject, itemID string) error

	// Close releases the underlying resources.
	Close() error
}
