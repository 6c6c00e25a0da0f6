package storage

import "time"

// Completion is one row of the quest completion journal.
type Completion struct {
	ID           int64     `db:"id"`
	QuestID      string    `db:"quest_id"`
	Title        string    `db:"title"`
	Difficulty   string    `db:"difficulty"`
	XPAwarded    int       `db:"xp_awarded"`
	CoinsAwarded int       `db:"coins_awarded"`
	LevelAfter   int       `db:"level_after"`
	CompletedAt  time.Time `db:"completed_at"`
}
