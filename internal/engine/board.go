package engine

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/up2sumit/KarmQuest/internal/storage"
)

// CompletionJournal receives an audit row for every completed quest.
type CompletionJournal interface {
	Insert(ctx context.Context, c storage.Completion) (int64, error)
}

// Board owns quests, notes, stats and achievements. Every mutation goes through
// its methods and is serialized; readers get copies.
type Board struct {
	mu    sync.Mutex
	state State

	kv      storage.KV
	journal CompletionJournal
	signal  SignalMode
	logger  *log.Logger
	now     func() time.Time
}

type Option func(*Board)

// WithStore persists a snapshot to kv after every change.
func WithStore(kv storage.KV) Option {
	return func(b *Board) { b.kv = kv }
}

func WithJournal(j CompletionJournal) Option {
	return func(b *Board) { b.journal = j }
}

func WithSignalMode(m SignalMode) Option {
	return func(b *Board) { b.signal = m }
}

func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

func NewBoard(initial State, opts ...Option) *Board {
	b := &Board{
		state:  normalizeState(initial.clone()),
		signal: SignalLifetimeXP,
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LoadBoard restores the board saved in kv, or starts from fallback when nothing
// usable is stored. The status says which happened; LoadBoard itself never saves.
func LoadBoard(ctx context.Context, kv storage.KV, fallback State, opts ...Option) (*Board, LoadStatus) {
	b := NewBoard(fallback, append([]Option{WithStore(kv)}, opts...)...)
	st, status := loadSnapshot(ctx, kv, b.logger)
	if status.Restored() {
		b.state = st
	}
	return b, status
}

func (b *Board) SignalMode() SignalMode { return b.signal }

func (b *Board) Stats() UserStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Stats
}

func (b *Board) Quests() []Quest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Quest(nil), b.state.Quests...)
}

func (b *Board) Quest(id string) (Quest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOfQuest(id); i >= 0 {
		return b.state.Quests[i], true
	}
	return Quest{}, false
}

func (b *Board) Achievements() []Achievement {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Achievement(nil), b.state.Achievements...)
}

func (b *Board) Notes() []Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.clone().Notes
}

// Snapshot returns a consistent copy of the whole board.
func (b *Board) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.clone()
}

// Reset replaces the whole board, e.g. with fresh or demo data, and saves it.
func (b *Board) Reset(ctx context.Context, st State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = normalizeState(st.clone())
	b.save(ctx)
}

func (b *Board) indexOfQuest(id string) int {
	for i := range b.state.Quests {
		if b.state.Quests[i].ID == id {
			return i
		}
	}
	return -1
}

// save writes the snapshot. Callers hold b.mu. Failures are logged, never returned.
func (b *Board) save(ctx context.Context) {
	if b.kv == nil {
		return
	}
	data, err := EncodeSnapshot(b.state)
	if err != nil {
		b.logger.Printf("warn: encode state: %v", err)
		return
	}
	if err := b.kv.Put(ctx, StateKey, data); err != nil {
		b.logger.Printf("warn: persist state: %v", err)
	}
}
