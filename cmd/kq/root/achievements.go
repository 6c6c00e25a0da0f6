package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/ui"
)

func newAchievementsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "List achievements and their thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, cleanup, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, a := range s.board.Achievements() {
				mark := ui.IconLock
				title := ui.Muted.Render(a.Title)
				if a.Unlocked {
					mark = a.Icon
					title = ui.Good.Render(a.Title)
				}
				fmt.Fprintf(out, "%s %s  %s  %s\n", mark, title, ui.RarityText(a.Rarity),
					ui.Muted.Render(fmt.Sprintf("%d XP · %s", a.XPRequired, a.Description)))
			}
			return nil
		},
	}
	return cmd
}
