package engine

import (
	"context"

	"github.com/google/uuid"
)

type QuestInput struct {
	Title      string
	Difficulty Difficulty
	DueDate    string // YYYY-MM-DD, a legacy label, or empty
	Category   string
}

// CreateQuest adds an active quest at the top of the board. The XP reward is read
// from the difficulty catalog once and frozen on the quest.
// Title validation is the caller's job.
func (b *Board) CreateQuest(ctx context.Context, in QuestInput) (Quest, error) {
	xp, err := XPForDifficulty(in.Difficulty)
	if err != nil {
		return Quest{}, err
	}

	q := Quest{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Difficulty: in.Difficulty,
		XPReward:   xp,
		DueDate:    ParseDueDate(in.DueDate),
		Status:     QuestActive,
		Category:   in.Category,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.Quests = append([]Quest{q}, b.state.Quests...)
	b.state.Stats.TotalQuests++
	b.save(ctx)
	return q, nil
}
