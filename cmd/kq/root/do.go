package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/ui"
)

func newDoCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest (an id prefix is enough)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, cleanup, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			var ids []string
			for _, q := range s.board.Quests() {
				ids = append(ids, q.ID)
			}
			id, err := matchID("quest", ids, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			res := s.board.CompleteQuest(ctx, id)
			if res == nil {
				q, _ := s.board.Quest(id)
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Already completed: "+q.Title))
				return nil
			}
			fmt.Fprintln(out, ui.OutcomeText(*res))
			return nil
		},
	}
	return cmd
}
