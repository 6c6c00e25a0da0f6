package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/up2sumit/KarmQuest/internal/storage"
)

func quietLogger(buf *bytes.Buffer) Option {
	return WithLogger(log.New(buf, "", 0))
}

func TestLoadBoardStartsFromFallbackWhenEmpty(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	b, status := LoadBoard(ctx, storage.NewMemoryKV(), DemoState(time.Now()), quietLogger(&logs))
	if status != LoadEmpty {
		t.Fatalf("status=%v, want empty", status)
	}
	if got := b.Stats(); got.Level != 5 || got.XP != 320 || got.Coins != 1250 {
		t.Fatalf("stats=%+v, want demo defaults", got)
	}
	if len(b.Quests()) != 8 || len(b.Notes()) != 6 || len(b.Achievements()) != 12 {
		t.Fatalf("demo data not loaded")
	}
	if logs.Len() != 0 {
		t.Fatalf("unexpected logs: %q", logs.String())
	}
}

func TestLoadBoardRestoresSavedState(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	b, _ := LoadBoard(ctx, kv, FreshState())
	q, err := b.CreateQuest(ctx, QuestInput{Title: "Persist me", Difficulty: DifficultyHard, DueDate: "2026-09-01", Category: "Karma"})
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}
	b.CompleteQuest(ctx, q.ID)
	b.CreateNote(ctx, NoteInput{Title: "kept", Tags: []string{"a"}})

	again, status := LoadBoard(ctx, kv, DemoState(time.Now()))
	if !status.Restored() {
		t.Fatalf("status=%v, want restored", status)
	}
	got, ok := again.Quest(q.ID)
	if !ok || got.Status != QuestCompleted || got.DueDate.String() != "2026-09-01" || got.XPReward != 50 {
		t.Fatalf("restored quest=%+v ok=%v", got, ok)
	}
	if st := again.Stats(); st.Coins != 100 || st.QuestsCompleted != 1 || st.LifetimeXP != 50 {
		t.Fatalf("restored stats=%+v", st)
	}
	if notes := again.Notes(); len(notes) != 1 || notes[0].Title != "kept" {
		t.Fatalf("restored notes=%+v", notes)
	}
}

func TestSnapshotFormat(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	b, _ := LoadBoard(ctx, kv, FreshState())
	b.CreateQuest(ctx, QuestInput{Title: "x", Difficulty: DifficultyTrivial, DueDate: "Tomorrow"})

	raw, _ := kv.Get(ctx, StateKey)
	if fresh, _ := EncodeSnapshot(b.Snapshot()); string(fresh) != string(raw) {
		t.Fatalf("EncodeSnapshot differs from the saved snapshot")
	}
	var doc struct {
		Version string `json:"version"`
		State   struct {
			Quests []map[string]any `json:"quests"`
			Stats  map[string]any   `json:"stats"`
		} `json:"state"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("snapshot is not JSON: %v", err)
	}
	if doc.Version != StateVersion {
		t.Fatalf("version=%q, want %q", doc.Version, StateVersion)
	}
	if len(doc.State.Quests) != 1 || doc.State.Quests[0]["dueDate"] != "Tomorrow" || doc.State.Quests[0]["xpReward"] != float64(10) {
		t.Fatalf("quests=%v", doc.State.Quests)
	}
	if _, ok := doc.State.Stats["xpToNext"]; !ok {
		t.Fatalf("stats missing xpToNext: %v", doc.State.Stats)
	}
}

func TestLoadBoardIgnoresOtherVersion(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	_ = kv.Put(ctx, StateKey, []byte(`{"version":"0.9.0","state":{"stats":{"level":42}}}`))

	var logs bytes.Buffer
	b, status := LoadBoard(ctx, kv, FreshState(), quietLogger(&logs))
	if status != LoadVersionMismatch || status.CanSeed() {
		t.Fatalf("status=%v, want version mismatch that must not be seeded over", status)
	}
	if left, _ := kv.Get(ctx, StateKey); left == nil {
		t.Fatalf("mismatched snapshot was deleted")
	}
	if b.Stats().Level != 1 {
		t.Fatalf("level=%d, want fallback level 1", b.Stats().Level)
	}
	if !strings.Contains(logs.String(), "0.9.0") {
		t.Fatalf("expected version warning, got %q", logs.String())
	}
}

func TestLoadBoardDiscardsCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	for name, payload := range map[string]string{
		"not json":  `{{{`,
		"bad state": `{"version":"1.0.0","state":{"quests":"nope"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			_ = kv.Put(ctx, StateKey, []byte(payload))

			var logs bytes.Buffer
			_, status := LoadBoard(ctx, kv, FreshState(), quietLogger(&logs))
			if status != LoadDiscarded || !status.CanSeed() {
				t.Fatalf("status=%v, want discarded", status)
			}
			if left, _ := kv.Get(ctx, StateKey); left != nil {
				t.Fatalf("corrupt snapshot was not discarded: %q", left)
			}
			if !strings.Contains(logs.String(), "corrupt") {
				t.Fatalf("expected corrupt warning, got %q", logs.String())
			}
		})
	}
}

type brokenReadKV struct{ *storage.MemoryKV }

func (brokenReadKV) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("database is locked")
}

func TestLoadBoardReadFailureLeavesStoreAlone(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryKV()
	saved := []byte(`{"version":"1.0.0","state":{"stats":{"level":9,"xp":10,"xpToNext":400}}}`)
	_ = mem.Put(ctx, StateKey, saved)

	var logs bytes.Buffer
	b, status := LoadBoard(ctx, brokenReadKV{mem}, FreshState(), quietLogger(&logs))
	if status != LoadReadFailed || status.CanSeed() {
		t.Fatalf("status=%v, want read failure that must not be seeded over", status)
	}
	if b == nil || b.Stats().Level != 1 {
		t.Fatalf("board=%v, want fallback board", b)
	}
	if left, _ := mem.Get(ctx, StateKey); string(left) != string(saved) {
		t.Fatalf("stored snapshot changed after read failure: %q", left)
	}
	if !strings.Contains(logs.String(), "database is locked") {
		t.Fatalf("expected read warning, got %q", logs.String())
	}
}

func TestLoadBoardRepairsInconsistentStats(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	_ = kv.Put(ctx, StateKey, []byte(`{"version":"1.0.0","state":{"stats":{"level":2,"xp":900,"xpToNext":120}}}`))

	b, status := LoadBoard(ctx, kv, DemoState(time.Now()))
	if !status.Restored() {
		t.Fatalf("status=%v, want restored", status)
	}
	st := b.Stats()
	// 900 spread over bars of 120, 144, 173, 208 and 250 leaves 5 at level 7.
	if st.Level != 7 || st.XP != 5 || st.XPToNext != 300 {
		t.Fatalf("stats=%+v, want level 7 with 5/300", st)
	}
	if st.Coins != 0 {
		t.Fatalf("coins=%d, repair must not pay out", st.Coins)
	}
	if n := CountUnlocked(b.Achievements()); n != 0 || len(b.Achievements()) != 12 {
		t.Fatalf("achievements=%d unlocked of %d, want 0 of 12", n, len(b.Achievements()))
	}
}

func TestLoadBoardNullStateStartsLocked(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	_ = kv.Put(ctx, StateKey, []byte(`{"version":"1.0.0","state":null}`))

	b, status := LoadBoard(ctx, kv, DemoState(time.Now()))
	if !status.Restored() {
		t.Fatalf("status=%v, want restored", status)
	}
	st := b.Stats()
	if st.Level != 1 || st.XP != 0 || st.XPToNext != BaseXPToNext {
		t.Fatalf("stats=%+v, want a level 1 player", st)
	}
	if n := CountUnlocked(b.Achievements()); n != 0 {
		t.Fatalf("%d achievements unlocked for a player who earned none", n)
	}
	if len(b.Quests()) != 0 || len(b.Notes()) != 0 {
		t.Fatalf("null state restored with content")
	}
}

func TestSaveFailureIsBestEffort(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{MemoryKV: storage.NewMemoryKV()}
	var logs bytes.Buffer
	b, _ := LoadBoard(ctx, kv, FreshState(), quietLogger(&logs))

	q, err := b.CreateQuest(ctx, QuestInput{Title: "x", Difficulty: DifficultyModerate})
	if err != nil {
		t.Fatalf("CreateQuest returned persistence error: %v", err)
	}
	if out := b.CompleteQuest(ctx, q.ID); out == nil {
		t.Fatalf("CompleteQuest failed on persistence error")
	}
	if kv.puts != 2 {
		t.Fatalf("puts=%d, want 2", kv.puts)
	}
	if !strings.Contains(logs.String(), "quota exceeded") {
		t.Fatalf("expected save warning, got %q", logs.String())
	}
	if b.Stats().Coins != 50 {
		t.Fatalf("in-memory state lost after failed save")
	}
}

func TestLoadBoardWithSQLiteKV(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	kv := storage.NewSQLiteKV(db)
	journal := storage.NewCompletionRepo(db)

	b, _ := LoadBoard(ctx, kv, FreshState(), WithJournal(journal))
	q, _ := b.CreateQuest(ctx, QuestInput{Title: "sqlite", Difficulty: DifficultyLegendary})
	b.CompleteQuest(ctx, q.ID)

	again, status := LoadBoard(ctx, kv, FreshState())
	if !status.Restored() || again.Stats().LifetimeXP != 100 {
		t.Fatalf("status=%v stats=%+v", status, again.Stats())
	}
	rows, err := journal.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 1 || rows[0].QuestID != q.ID || rows[0].XPAwarded != 100 {
		t.Fatalf("journal rows=%+v", rows)
	}
}

func TestResetReplacesAndSaves(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	b, _ := LoadBoard(ctx, kv, DemoState(time.Now()))
	b.Reset(ctx, FreshState())

	if len(b.Quests()) != 0 || b.Stats().Level != 1 {
		t.Fatalf("board not reset")
	}
	again, status := LoadBoard(ctx, kv, DemoState(time.Now()))
	if !status.Restored() || again.Stats().Level != 1 {
		t.Fatalf("reset state not persisted")
	}
}
