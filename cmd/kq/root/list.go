package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/engine"
	"github.com/up2sumit/KarmQuest/internal/ui"
)

func newListCmd(flags *globalFlags) *cobra.Command {
	var all bool
	var done bool
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests, most urgent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sortBy != "urgency" && sortBy != "created" {
				return fmt.Errorf("unknown sort %q (want urgency|created)", sortBy)
			}

			ctx := cmd.Context()
			s, cleanup, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			var quests []engine.Quest
			for _, q := range s.board.Quests() {
				switch {
				case all:
				case done && !q.IsCompleted():
					continue
				case !done && q.IsCompleted():
					continue
				}
				quests = append(quests, q)
			}
			now := time.Now()
			if sortBy == "urgency" {
				engine.SortByUrgency(quests, now)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quest Log"))
			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no quests)"))
				return nil
			}
			for _, q := range quests {
				title := q.Title
				if q.IsCompleted() {
					title = ui.Muted.Render(ui.IconDone + " " + title)
				}
				category := ""
				if q.Category != "" {
					category = ui.Muted.Render(" #" + q.Category)
				}
				status := ""
				if all || done {
					status = "  " + ui.StatusText(q.Status)
				}
				fmt.Fprintf(out, "%s  %s%s  %s  %s%s\n",
					ui.Key.Render(shortID(q.ID)), title, category,
					ui.DifficultyBadge(q.Difficulty), ui.UrgencyText(q.DueDate.UrgencyAt(now)), status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed quests")
	cmd.Flags().BoolVar(&done, "done", false, "Only completed quests")
	cmd.Flags().StringVar(&sortBy, "sort", "urgency", "Order: urgency|created")
	return cmd
}
