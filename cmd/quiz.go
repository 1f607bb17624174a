package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <item-id>",
	Short: "Submit a quiz attempt",
	Long: "Submit answers for every question of a quiz, e.g.\n" +
		"  braincell quiz algebra-q1 -a 0='3x + 1' -a 1='12' -a 2='x = 4'",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetStringArray("answer")
		answers, err := parseAnswers(raw)
		if err != nil {
			return err
		}

		eng, done, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer done()

		res, err := eng.SubmitQuiz(cmd.Context(), args[0], answers)
		if err != nil {
			return err
		}

		verdict := "failed"
		if res.Passed {
			verdict = "passed"
		}
		fmt.Printf("%d/%d correct (%.0f%%) — %s\n", res.Correct, res.Total, res.Score, verdict)
		return nil
	},
}

func init() {
	quizCmd.Flags().StringArrayP("answer", "a", nil, "Answer as <question-index>=<option text> (repeatable)")
}

// parseAnswers turns repeated "idx=text" flags into the grader's answer
// map.
func parseAnswers(raw []string) (map[int]string, error) {
	answers := make(map[int]string, len(raw))
	for _, r := range raw {
		idx, text, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("answer %q not in <index>=<text> form", r)
		}
		i, err := strconv.Atoi(idx)
		if err != nil {
			return nil, fmt.Errorf("answer %q: bad question index: %w", r, err)
		}
		answers[i] = text
	}
	return answers, nil
}
