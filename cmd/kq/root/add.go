package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/engine"
	"github.com/up2sumit/KarmQuest/internal/ui"
)

func newAddCmd(flags *globalFlags) *cobra.Command {
	var diff string
	var due string
	var category string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a quest (opens a form when no title is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				if err := runAddForm(&title, &diff, &due, &category); err != nil {
					return err
				}
			}
			title = strings.TrimSpace(title)
			if title == "" {
				return errors.New("title is required")
			}
			d, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			dueDate, err := resolveDue(due)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, cleanup, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := s.board.CreateQuest(ctx, engine.QuestInput{
				Title:      title,
				Difficulty: d,
				DueDate:    dueDate,
				Category:   strings.TrimSpace(category),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Added quest %s: %s\n", ui.IconPlus, ui.Key.Render(q.ID), q.Title)
			fmt.Fprintf(out, "   %s  %s\n", ui.DifficultyBadge(q.Difficulty), ui.UrgencyText(q.DueDate.UrgencyAt(time.Now())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "difficulty", "d", string(engine.DifficultyModerate), "Difficulty (trivial|moderate|hard|legendary)")
	cmd.Flags().StringVar(&due, "due", "", "Due date: YYYY-MM-DD, +N/-N days from today, or a label such as \"This Week\"")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category")
	return cmd
}

func runAddForm(title, diff, due, category *string) error {
	var options []huh.Option[string]
	for _, d := range engine.Difficulties() {
		info, _ := engine.LookupDifficulty(d)
		options = append(options, huh.NewOption(fmt.Sprintf("%s (+%d XP)", info.Label, info.XP), string(d)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Quest").
				Placeholder("Defeat the Asura of Procrastination").
				Value(title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(options...).
				Value(diff),
			huh.NewInput().
				Title("Due").
				Description("YYYY-MM-DD or +N days; leave empty for none").
				Value(due).
				Validate(func(s string) error {
					_, err := resolveDue(s)
					return err
				}),
			huh.NewInput().
				Title("Category").
				Placeholder("Karma").
				Value(category),
		),
	)
	return form.Run()
}

// resolveDue turns +N/-N into an ISO date relative to today; anything else is kept as given.
func resolveDue(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if s[0] == '+' || s[0] == '-' {
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("invalid due offset %q", s)
		}
		return engine.Offset(n), nil
	}
	return s, nil
}
