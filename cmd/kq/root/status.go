package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/engine"
	"github.com/up2sumit/KarmQuest/internal/ui"
)

func newStatusCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, coins and achievement progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, cleanup, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			st := s.board.Stats()
			achievements := s.board.Achievements()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintln(out, ui.StatsLine(st))
			fmt.Fprintln(out, ui.LabelValue("Lifetime XP", st.LifetimeXP))
			fmt.Fprintln(out, ui.LabelValue("Quests", fmt.Sprintf("%d completed of %d created", st.QuestsCompleted, st.TotalQuests)))

			now := time.Now()
			startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			today, err := s.journal.CountSince(ctx, startOfDay)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Completed today", today))
			fmt.Fprintln(out, "")

			mode := s.board.SignalMode()
			fmt.Fprintln(out, ui.LabelValue("Achievements", fmt.Sprintf("%d/%d unlocked", engine.CountUnlocked(achievements), len(achievements))))
			if next, ok := engine.NextAchievement(achievements); ok {
				signal := mode.Signal(st)
				fmt.Fprintf(out, "%s %s %s %s\n", ui.Key.Render("Next:"), next.Icon, next.Title,
					ui.Muted.Render(fmt.Sprintf("(%d/%d %s XP)", signal, next.XPRequired, mode)))
			} else {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" Every achievement unlocked"))
			}
			return nil
		},
	}
	return cmd
}
