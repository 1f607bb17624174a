package cmd

import "testing"

func TestParseAnswers(t *testing.T) {
	got, err := parseAnswers([]string{"0=3x + 1", "1=x = 4", "2=12"})
	if err != nil {
		t.Fatalf("parseAnswers: %v", err)
	}
	want := map[int]string{0: "3x + 1", 1: "x = 4", 2: "12"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("answers[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestParseAnswers_Malformed(t *testing.T) {
	for _, raw := range []string{"no-separator", "x=abc"} {
		if _, err := parseAnswers([]string{raw}); err == nil {
			t.Errorf("parseAnswers(%q) accepted malformed input", raw)
		}
	}
}
