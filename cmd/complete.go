package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
	"github.com/Durgaprasad2408/BrainCell-sub002/internal/engine"
)

var completeCmd = &cobra.Command{
	Use:   "complete <item-id>",
	Short: "Mark a lesson read or a video watched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, done, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer done()

		itemID := args[0]
		it, ok := eng.Catalog().Item(itemID)
		if !ok {
			return &engine.NotFoundError{ItemID: itemID}
		}

		ctx := cmd.Context()
		switch it.Kind {
		case catalog.KindLesson:
			err = eng.Acknowledge(ctx, itemID)
		case catalog.KindVideo:
			err = eng.VideoEnded(ctx, itemID)
		case catalog.KindQuiz:
			return fmt.Errorf("quizzes complete by passing: use 'braincell quiz %s'", itemID)
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s completed\n", itemID)
		return nil
	},
}
