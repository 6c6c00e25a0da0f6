package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/up2sumit/KarmQuest/internal/ui"
)

const Version = "1.0.0"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	dbPath     string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "kq",
		Short:         "KarmQuest, a gamified quest board",
		Long:          "KarmQuest turns tasks into quests: complete them to earn XP and coins, level up and unlock achievements.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/karmquest/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database path (overrides db_path)")

	rootCmd.AddCommand(
		newAddCmd(flags),
		newDoCmd(flags),
		newListCmd(flags),
		newStatusCmd(flags),
		newAchievementsCmd(flags),
		newNoteCmd(flags),
		newHistoryCmd(flags),
		newBoardCmd(flags),
		newResetCmd(flags),
	)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
