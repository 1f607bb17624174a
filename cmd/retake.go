package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var retakeCmd = &cobra.Command{
	Use:   "retake <item-id>",
	Short: "Clear a quiz's answers and result for another attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, done, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer done()

		if err := eng.RetakeQuiz(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("%s reset; submit a new attempt when ready\n", args[0])
		return nil
	},
}
