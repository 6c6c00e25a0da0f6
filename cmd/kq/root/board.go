package root

import (
	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/tui"
)

func newBoardCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, cleanup, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, s.board, cmd.OutOrStdout(), s.cfg.ToastDuration())
		},
	}

	return cmd
}
