package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/up2sumit/KarmQuest/internal/engine"
)

// RunBoard runs the interactive board until the user quits.
// Log output is silenced while the board owns the terminal, or written to
// kq-debug.log when KQ_DEBUG is set.
func RunBoard(ctx context.Context, board *engine.Board, out io.Writer, toastDelay time.Duration) error {
	if os.Getenv("KQ_DEBUG") != "" {
		f, err := tea.LogToFile("kq-debug.log", "kq")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	m := newBoardModel(ctx, board, toastDelay)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
