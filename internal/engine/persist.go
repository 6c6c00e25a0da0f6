package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/up2sumit/KarmQuest/internal/storage"
)

const (
	// StateKey is the namespace key the board snapshot is stored under.
	StateKey = "karmquest-app-state"
	// StateVersion is written into every snapshot; snapshots with another version are ignored.
	StateVersion = "1.0.0"
)

// LoadStatus reports what LoadBoard found in the store.
type LoadStatus int

const (
	// LoadRestored means the saved board was restored.
	LoadRestored LoadStatus = iota
	// LoadEmpty means nothing was saved yet.
	LoadEmpty
	// LoadVersionMismatch means a snapshot of another version was left untouched.
	LoadVersionMismatch
	// LoadDiscarded means an undecodable snapshot was deleted.
	LoadDiscarded
	// LoadReadFailed means the store could not be read; what it holds is unknown.
	LoadReadFailed
)

func (s LoadStatus) Restored() bool { return s == LoadRestored }

// CanSeed reports whether writing a starting board cannot overwrite saved progress.
func (s LoadStatus) CanSeed() bool { return s == LoadEmpty || s == LoadDiscarded }

func (s LoadStatus) String() string {
	switch s {
	case LoadRestored:
		return "restored"
	case LoadEmpty:
		return "empty"
	case LoadVersionMismatch:
		return "version mismatch"
	case LoadDiscarded:
		return "discarded"
	case LoadReadFailed:
		return "read failed"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

type snapshot struct {
	Version string          `json:"version"`
	State   json.RawMessage `json:"state"`
}

// EncodeSnapshot returns the stored form of st: {"version": ..., "state": ...}.
func EncodeSnapshot(st State) ([]byte, error) {
	state, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	data, err := json.Marshal(snapshot{Version: StateVersion, State: state})
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// loadSnapshot restores a saved board. Problems are logged and reported through
// the status so the caller can fall back to defaults.
func loadSnapshot(ctx context.Context, kv storage.KV, logger *log.Logger) (State, LoadStatus) {
	raw, err := kv.Get(ctx, StateKey)
	if err != nil {
		logger.Printf("warn: read saved state: %v (starting from defaults)", err)
		return State{}, LoadReadFailed
	}
	if raw == nil {
		return State{}, LoadEmpty
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		discardSnapshot(ctx, kv, logger, err)
		return State{}, LoadDiscarded
	}
	if snap.Version != StateVersion {
		logger.Printf("warn: saved state version %q does not match %q, skipping restore", snap.Version, StateVersion)
		return State{}, LoadVersionMismatch
	}

	var st State
	if err := json.Unmarshal(snap.State, &st); err != nil {
		discardSnapshot(ctx, kv, logger, err)
		return State{}, LoadDiscarded
	}
	return normalizeState(st), LoadRestored
}

func discardSnapshot(ctx context.Context, kv storage.KV, logger *log.Logger, cause error) {
	logger.Printf("warn: saved state is corrupt: %v (discarding)", cause)
	if err := kv.Delete(ctx, StateKey); err != nil {
		logger.Printf("warn: discard saved state: %v", err)
	}
}

// normalizeState repairs fields a hand-edited or partial snapshot may lack.
// Missing achievements start locked; stats are brought back to 0 <= XP < XPToNext
// by resolving any pending level-ups.
func normalizeState(st State) State {
	if st.Quests == nil {
		st.Quests = []Quest{}
	}
	if st.Notes == nil {
		st.Notes = []Note{}
	}
	if st.Achievements == nil {
		st.Achievements = lockedAchievements()
	}
	st.Stats = ApplyReward(st.Stats, 0).Stats
	if st.Stats.LifetimeXP < st.Stats.XP {
		st.Stats.LifetimeXP = st.Stats.XP
	}
	return st
}
