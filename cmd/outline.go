package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/engine"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Show the subject outline with lock and completion state",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, done, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer done()

		for _, mod := range eng.Outline() {
			fmt.Println(mod.Name)
			for _, st := range mod.Items {
				fmt.Printf("  %s %-6s %-24s %s\n", marker(st), st.Item.Kind.Label(), st.Item.ID, st.Item.Title)
			}
		}

		if initial := eng.PickInitial(); initial != nil {
			fmt.Printf("\nup next: %s\n", initial.ID)
		}
		return nil
	},
}

// marker renders an item's state: locked, open, completed, or the quiz
// score when a result is stored.
func marker(st engine.ItemStatus) string {
	switch {
	case st.Result != nil && st.Result.Passed:
		return fmt.Sprintf("[%3.0f%%]", st.Result.Score)
	case st.Result != nil:
		return fmt.Sprintf("(%3.0f%%)", st.Result.Score)
	case st.Completed:
		return "[done]"
	case st.Unlocked:
		return "[open]"
	default:
		return "[lock]"
	}
}
