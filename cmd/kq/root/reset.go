package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/engine"
	"github.com/up2sumit/KarmQuest/internal/storage"
	"github.com/up2sumit/KarmQuest/internal/ui"
)

func newResetCmd(flags *globalFlags) *cobra.Command {
	var demo bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start over with an empty board (or the demo board)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed := false
				err := huh.NewConfirm().
					Title("Erase every quest, note and all progress?").
					Affirmative("Reset").
					Negative("Cancel").
					Value(&confirmed).
					Run()
				if err != nil {
					return err
				}
				if !confirmed {
					return errors.New("reset cancelled")
				}
			}

			ctx := cmd.Context()
			s, cleanup, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			st := engine.FreshState()
			if demo {
				st = engine.DemoState(time.Now())
			}
			data, err := engine.EncodeSnapshot(st)
			if err != nil {
				return err
			}
			if err := storage.ResetBoard(ctx, s.db, engine.StateKey, data); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Board reset"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Load the demo board instead of an empty one")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
