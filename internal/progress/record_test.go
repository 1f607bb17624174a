package progress

import "testing"

func TestAnswerKeyRoundTrip(t *testing.T) {
	tests := []struct {
		itemID string
		idx    int
	}{
		{"Q1", 0},
		{"algebra-quiz-2", 13},
		{"has_q_inside", 4},
	}
	for _, tt := range tests {
		key := AnswerKey(tt.itemID, tt.idx)
		id, idx, ok := ParseAnswerKey(key)
		if !ok || id != tt.itemID || idx != tt.idx {
			t.Errorf("ParseAnswerKey(%q) = (%q, %d, %v), want (%q, %d, true)", key, id, idx, ok, tt.itemID, tt.idx)
		}
	}
}

func TestParseAnswerKey_Malformed(t *testing.T) {
	for _, key := range []string{"", "Q1", "Q1_q", "Q1_qx", "_q3"} {
		if _, _, ok := ParseAnswerKey(key); ok {
			t.Errorf("ParseAnswerKey(%q) accepted a malformed key", key)
		}
	}
}

func TestRecord_AnswersFor(t *testing.T) {
	rec := NewRecord()
	rec.Answers[AnswerKey("Q1", 0)] = "a"
	rec.Answers[AnswerKey("Q1", 2)] = "c"
	rec.Answers[AnswerKey("Q2", 0)] = "x"

	got := rec.AnswersFor("Q1")
	if len(got) != 2 || got[0] != "a" || got[2] != "c" {
		t.Errorf("AnswersFor(Q1) = %v, want map[0:a 2:c]", got)
	}
}

func TestRecord_SnapshotIsIndependent(t *testing.T) {
	rec := NewRecord()
	rec.Completed["L1"] = true
	rec.Results["Q1"] = Result{Correct: 3, Total: 4, Score: 75, Passed: true}

	snap := rec.Snapshot()
	snap.Completed["L2"] = true
	delete(snap.Results, "Q1")

	if rec.Completed["L2"] {
		t.Error("mutating the snapshot leaked into the record")
	}
	if _, ok := rec.Result("Q1"); !ok {
		t.Error("deleting from the snapshot removed the record's result")
	}
}
