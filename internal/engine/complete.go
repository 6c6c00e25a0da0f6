package engine

import (
	"context"

	"github.com/up2sumit/KarmQuest/internal/storage"
)

type OutcomeKind string

const (
	// OutcomeToast is a plain "+XP" notice.
	OutcomeToast OutcomeKind = "toast"
	// OutcomeCelebration is shown for a level-up or new achievements.
	OutcomeCelebration OutcomeKind = "celebration"
)

// Outcome is the single presentation event produced by a completion.
type Outcome struct {
	Kind          OutcomeKind
	QuestID       string
	QuestTitle    string
	XPEarned      int
	CoinsEarned   int
	FinalLevel    int
	LevelsGained  int
	NewlyUnlocked []Achievement
}

func (o Outcome) IsCelebration() bool { return o.Kind == OutcomeCelebration }

// CompleteQuest completes an active quest and applies its reward.
// It returns nil and changes nothing when id is unknown or the quest is already completed.
func (b *Board) CompleteQuest(ctx context.Context, id string) *Outcome {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexOfQuest(id)
	if idx < 0 {
		return nil
	}
	q := b.state.Quests[idx]
	if q.IsCompleted() {
		return nil
	}

	// Everything below is computed from one snapshot of the prior stats and
	// committed together.
	res := ApplyReward(b.state.Stats, q.XPReward)
	stats := res.Stats
	stats.QuestsCompleted++
	eval := EvaluateAchievements(b.state.Achievements, b.signal.Signal(stats))

	quests := append([]Quest(nil), b.state.Quests...)
	quests[idx].Status = QuestCompleted

	b.state.Quests = quests
	b.state.Stats = stats
	b.state.Achievements = eval.Updated

	out := Outcome{
		Kind:          OutcomeToast,
		QuestID:       q.ID,
		QuestTitle:    q.Title,
		XPEarned:      q.XPReward,
		CoinsEarned:   res.CoinsEarned,
		FinalLevel:    res.FinalLevel,
		LevelsGained:  res.LevelsGained,
		NewlyUnlocked: eval.NewlyUnlocked,
	}
	if res.DidLevelUp || len(eval.NewlyUnlocked) > 0 {
		out.Kind = OutcomeCelebration
	}

	b.save(ctx)
	b.record(ctx, q, out)
	return &out
}

func (b *Board) record(ctx context.Context, q Quest, out Outcome) {
	if b.journal == nil {
		return
	}
	_, err := b.journal.Insert(ctx, storage.Completion{
		QuestID:      q.ID,
		Title:        q.Title,
		Difficulty:   string(q.Difficulty),
		XPAwarded:    out.XPEarned,
		CoinsAwarded: out.CoinsEarned,
		LevelAfter:   out.FinalLevel,
		CompletedAt:  b.now(),
	})
	if err != nil {
		b.logger.Printf("warn: journal completion %s: %v", q.ID, err)
	}
}
