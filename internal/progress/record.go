package progress

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Result is the stored outcome of one quiz submission.
type Result struct {
	AttemptID   string
	Correct     int
	Total       int
	Score       float64
	Passed      bool
	SubmittedAt time.Time
}

// Record is the durable per-subject progress state. Completed holds
// content-item ids confirmed complete; Answers holds the learner's chosen
// option per question keyed by AnswerKey; Results holds the latest quiz
// result per item. Absent state reads as empty.
//
// The source system kept a single record shared across every subject;
// here each record is scoped to one subject and the store keys all rows
// by (subject, item) so id reuse across subjects cannot collide.
type Record struct {
	Completed map[string]bool
	Answers   map[string]string
	Results   map[string]Result
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{
		Completed: make(map[string]bool),
		Answers:   make(map[string]string),
		Results:   make(map[string]Result),
	}
}

// IsCompleted reports whether the item is in the completed set.
func (r *Record) IsCompleted(itemID string) bool {
	return r.Completed[itemID]
}

// Result returns the stored quiz result for an item, if any.
func (r *Record) Result(itemID string) (Result, bool) {
	res, ok := r.Results[itemID]
	return res, ok
}

// Answer returns the stored choice for one question of a quiz, if any.
func (r *Record) Answer(itemID string, questionIdx int) (string, bool) {
	choice, ok := r.Answers[AnswerKey(itemID, questionIdx)]
	return choice, ok
}

// AnswersFor returns all stored answers for a quiz, keyed by question index.
func (r *Record) AnswersFor(itemID string) map[int]string {
	out := make(map[int]string)
	for key, choice := range r.Answers {
		id, idx, ok := ParseAnswerKey(key)
		if ok && id == itemID {
			out[idx] = choice
		}
	}
	return out
}

// Snapshot returns a deep copy for presentation reads.
func (r *Record) Snapshot() *Record {
	out := NewRecord()
	for k, v := range r.Completed {
		out.Completed[k] = v
	}
	for k, v := range r.Answers {
		out.Answers[k] = v
	}
	for k, v := range r.Results {
		out.Results[k] = v
	}
	return out
}

// AnswerKey builds the serialized key for one question's answer,
// "<itemID>_q<index>". This is the layout the platform has always used
// for persisted answers.
func AnswerKey(itemID string, questionIdx int) string {
	return fmt.Sprintf("%s_q%d", itemID, questionIdx)
}

// ParseAnswerKey splits an answer key back into item id and question
// index. Returns ok=false for keys not in the expected layout.
func ParseAnswerKey(key string) (itemID string, questionIdx int, ok bool) {
	i := strings.LastIndex(key, "_q")
	if i < 0 {
		return "", 0, false
	}
	idx, err := strconv.Atoi(key[i+2:])
	if err != nil || key[:i] == "" {
		return "", 0, false
	}
	return key[:i], idx, true
}
