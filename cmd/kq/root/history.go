package root

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/ui"
)

func newHistoryCmd(flags *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent quest completions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, cleanup, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			rows, err := s.journal.Recent(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Completions"))
			if len(rows) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing completed yet)"))
				return nil
			}
			for _, r := range rows {
				fmt.Fprintf(out, "%s  %s  +%d XP  +%d %s  %s  %s\n",
					ui.Muted.Render(humanize.Time(r.CompletedAt)), r.Title, r.XPAwarded, r.CoinsAwarded, ui.IconCoin,
					ui.Muted.Render(fmt.Sprintf("L%d", r.LevelAfter)), ui.Muted.Render(r.Difficulty))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries")
	return cmd
}
