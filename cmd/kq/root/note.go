package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/engine"
	"github.com/up2sumit/KarmQuest/internal/ui"
)

func newNoteCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes (scrolls)",
	}
	cmd.AddCommand(newNoteAddCmd(flags), newNoteListCmd(flags), newNoteRmCmd(flags))
	return cmd
}

func newNoteAddCmd(flags *globalFlags) *cobra.Command {
	var content string
	var tags []string
	var emoji string
	var color string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a note",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("title is required")
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

			n := s.board.CreateNote(ctx, engine.NoteInput{
				Title:   strings.TrimSpace(strings.Join(args, " ")),
				Content: content,
				Tags:    tags,
				Color:   color,
				Emoji:   emoji,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added note %s: %s\n", n.Emoji, ui.Key.Render(n.ID), n.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "m", "", "Note body")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&emoji, "emoji", "", "Emoji shown next to the title")
	cmd.Flags().StringVar(&color, "color", "", "Hex colour, e.g. #6366F1")
	return cmd
}

func newNoteListCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, cleanup, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Scrolls"))
			notes := s.board.Notes()
			if len(notes) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no notes)"))
				return nil
			}
			for _, n := range notes {
				fmt.Fprintf(out, "%s %s %s  %s\n", ui.Key.Render(shortID(n.ID)), n.Emoji, ui.H2.Render(n.Title),
					ui.Muted.Render(humanize.Time(n.CreatedAt)))
				if n.Content != "" {
					fmt.Fprintf(out, "   %s\n", n.Content)
				}
				if len(n.Tags) > 0 {
					fmt.Fprintf(out, "   %s\n", ui.Muted.Render("#"+strings.Join(n.Tags, " #")))
				}
			}
			return nil
		},
	}
	return cmd
}

func newNoteRmCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note (an id prefix is enough)",
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
			for _, n := range s.board.Notes() {
				ids = append(ids, n.ID)
			}
			id, err := matchID("note", ids, args[0])
			if err != nil {
				return err
			}
			if !s.board.DeleteNote(ctx, id) {
				return fmt.Errorf("note %s not found", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted note %s\n", ui.IconDone, shortID(id))
			return nil
		},
	}
	return cmd
}
