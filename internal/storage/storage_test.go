package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	return db
}

func TestSQLiteKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewSQLiteKV(newTestDB(t))

	got, err := kv.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Fatalf("get missing=%q, want nil", got)
	}

	if err := kv.Put(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("put overwrite: %v", err)
	}
	got, err = kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("get=%q, want %q", got, "two")
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("get after delete=%q, want nil", got)
	}
}

func TestSQLiteKVSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kq.db")

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := NewSQLiteKV(db).Put(ctx, "state", []byte(`{"version":"1"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	_ = db.Close()

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	got, err := NewSQLiteKV(db).Get(ctx, "state")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"version":"1"}` {
		t.Fatalf("get=%q after reopen", got)
	}
}

func TestMemoryKVCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	buf := []byte("abc")
	_ = kv.Put(ctx, "k", buf)
	buf[0] = 'z'

	got, _ := kv.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("get=%q, want abc", got)
	}
	got[1] = 'z'
	again, _ := kv.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value mutated through Get: %q", again)
	}
}

func TestCompletionRepoRecentAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewCompletionRepo(newTestDB(t))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		_, err := repo.Insert(ctx, Completion{
			QuestID:      title,
			Title:        title,
			Difficulty:   "hard",
			XPAwarded:    50,
			CoinsAwarded: 100,
			LevelAfter:   5 + i,
			CompletedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("insert %s: %v", title, err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent)=%d, want 2", len(recent))
	}
	if recent[0].Title != "third" || recent[1].Title != "second" {
		t.Fatalf("recent order=%q,%q, want third,second", recent[0].Title, recent[1].Title)
	}
	if recent[0].LevelAfter != 7 || recent[0].CoinsAwarded != 100 {
		t.Fatalf("recent[0]=%+v", recent[0])
	}

	n, err := repo.CountSince(ctx, base.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("CountSince=%d, want 2", n)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	recent, err = repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent after clear: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("len(recent) after clear=%d, want 0", len(recent))
	}
}

func TestCompletionRepoClearRestartsIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewCompletionRepo(newTestDB(t))

	for i := 0; i < 3; i++ {
		if _, err := repo.Insert(ctx, Completion{QuestID: "q", Title: "q", Difficulty: "trivial"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	id, err := repo.Insert(ctx, Completion{QuestID: "q", Title: "q", Difficulty: "trivial"})
	if err != nil {
		t.Fatalf("insert after clear: %v", err)
	}
	if id != 1 {
		t.Fatalf("id=%d after clear, want 1", id)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	kv := NewSQLiteKV(db)
	if err := kv.Put(ctx, "k", []byte("before")); err != nil {
		t.Fatalf("put: %v", err)
	}

	boom := errors.New("boom")
	err := WithTx(ctx, db, func(tx *sqlx.Tx) error {
		if err := putKV(ctx, tx, "k", []byte("after")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
	if got, _ := kv.Get(ctx, "k"); string(got) != "before" {
		t.Fatalf("value=%q after rollback, want before", got)
	}
}

func TestResetBoardReplacesSnapshotAndJournal(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	kv := NewSQLiteKV(db)
	repo := NewCompletionRepo(db)

	if err := kv.Put(ctx, "board", []byte("old")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := repo.Insert(ctx, Completion{QuestID: "q", Title: "q", Difficulty: "hard"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := ResetBoard(ctx, db, "board", []byte("new")); err != nil {
		t.Fatalf("ResetBoard: %v", err)
	}
	if got, _ := kv.Get(ctx, "board"); string(got) != "new" {
		t.Fatalf("snapshot=%q, want new", got)
	}
	if n, _ := repo.CountSince(ctx, time.Time{}); n != 0 {
		t.Fatalf("journal rows=%d after reset, want 0", n)
	}
}

func TestResetBoardIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	kv := NewSQLiteKV(db)
	repo := NewCompletionRepo(db)

	if err := kv.Put(ctx, "board", []byte("old")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := repo.Insert(ctx, Completion{QuestID: "q", Title: "q", Difficulty: "hard"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Without a kv table the snapshot write fails after the journal was cleared.
	if _, err := db.ExecContext(ctx, `ALTER TABLE kv RENAME TO kv_saved`); err != nil {
		t.Fatalf("rename kv: %v", err)
	}
	if err := ResetBoard(ctx, db, "board", []byte("new")); err == nil {
		t.Fatalf("ResetBoard succeeded without a kv table")
	}
	if n, _ := repo.CountSince(ctx, time.Time{}); n != 1 {
		t.Fatalf("journal rows=%d after failed reset, want 1", n)
	}
	var kept []byte
	if err := db.GetContext(ctx, &kept, `SELECT value FROM kv_saved WHERE key = 'board'`); err != nil {
		t.Fatalf("read kept snapshot: %v", err)
	}
	if string(kept) != "old" {
		t.Fatalf("snapshot=%q after failed reset, want old", kept)
	}
}

func TestOpenSetsBusyTimeout(t *testing.T) {
	db := newTestDB(t)
	var ms int
	if err := db.GetContext(context.Background(), &ms, `PRAGMA busy_timeout`); err != nil {
		t.Fatalf("read busy_timeout: %v", err)
	}
	if ms != BusyTimeoutMillis {
		t.Fatalf("busy_timeout=%d, want %d", ms, BusyTimeoutMillis)
	}
}
