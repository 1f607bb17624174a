package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var faqCmd = &cobra.Command{
	Use:   "faq <item-id>",
	Short: "Show FAQs for a lesson or video, or ask a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, done, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer done()

		ctx := cmd.Context()
		itemID := args[0]

		if q, _ := cmd.Flags().GetString("ask"); q != "" {
			if err := eng.SubmitQuestion(ctx, itemID, q); err != nil {
				return err
			}
			fmt.Println("question submitted")
			return nil
		}

		sel, err := eng.Select(ctx, itemID)
		if err != nil {
			return err
		}
		if len(sel.FAQs) == 0 {
			fmt.Println("no FAQs yet")
			return nil
		}
		for _, f := range sel.FAQs {
			fmt.Printf("Q: %s\nA: %s — %s\n\n", f.Question, f.Answer, f.AuthorName)
		}
		return nil
	},
}

func init() {
	faqCmd.Flags().String("ask", "", "Submit a question instead of listing")
}
