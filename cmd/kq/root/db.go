package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/up2sumit/KarmQuest/internal/config"
	"github.com/up2sumit/KarmQuest/internal/engine"
	"github.com/up2sumit/KarmQuest/internal/storage"
)

// session is everything a command needs: the loaded config, the board and its journal.
type session struct {
	cfg     *config.Config
	db      *sqlx.DB
	board   *engine.Board
	journal *storage.CompletionRepo
}

func (s *session) fallbackState() engine.State {
	if s.cfg.DemoData {
		return engine.DemoState(time.Now())
	}
	return engine.FreshState()
}

func openSession(ctx context.Context, flags *globalFlags) (*session, func(), error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if flags.dbPath != "" {
		cfg.DBPath = flags.dbPath
	}
	signal, err := engine.ParseSignalMode(cfg.Progression.Signal)
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	s := &session{cfg: cfg, db: db, journal: storage.NewCompletionRepo(db)}

	board, err := loadBoard(ctx, storage.NewSQLiteKV(db), s.fallbackState(),
		engine.WithJournal(s.journal),
		engine.WithSignalMode(signal),
	)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("%s: %w", cfg.DBPath, err)
	}
	s.board = board

	cleanup := func() {
		_ = db.Close()
	}
	return s, cleanup, nil
}

// loadBoard restores the saved board. A starting board is written only when that
// cannot overwrite saved progress; an unreadable store is an error.
func loadBoard(ctx context.Context, kv storage.KV, fallback engine.State, opts ...engine.Option) (*engine.Board, error) {
	board, status := engine.LoadBoard(ctx, kv, fallback, opts...)
	switch {
	case status == engine.LoadReadFailed:
		return nil, errors.New("saved board could not be read; nothing was changed, try again")
	case status.CanSeed():
		// Persist the starting board so ids and relative due dates stay put.
		board.Reset(ctx, fallback)
	}
	return board, nil
}
