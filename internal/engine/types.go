package engine

import "time"

type Difficulty string

const (
	DifficultyTrivial   Difficulty = "trivial"
	DifficultyModerate  Difficulty = "moderate"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
)

func (d Difficulty) IsValid() bool {
	_, ok := difficultyCatalog[d]
	return ok
}

type QuestStatus string

const (
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Quest is a task with a frozen XP reward. Status only moves active -> completed.
type Quest struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Difficulty Difficulty  `json:"difficulty"`
	XPReward   int         `json:"xpReward"`
	DueDate    DueDate     `json:"dueDate"`
	Status     QuestStatus `json:"status"`
	Category   string      `json:"category"`
}

func (q Quest) IsCompleted() bool { return q.Status == QuestCompleted }

// UserStats is the single progression record of the player.
// XP is the position inside the current level bar; LifetimeXP only ever grows.
type UserStats struct {
	Level           int    `json:"level"`
	XP              int    `json:"xp"`
	XPToNext        int    `json:"xpToNext"`
	LifetimeXP      int    `json:"lifetimeXp"`
	Coins           int    `json:"coins"`
	Streak          int    `json:"streak"`
	QuestsCompleted int    `json:"questsCompleted"`
	TotalQuests     int    `json:"totalQuests"`
	AvatarEmoji     string `json:"avatarEmoji"`
	Username        string `json:"username"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	XPRequired  int    `json:"xpRequired"`
	Rarity      Rarity `json:"rarity"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	Emoji     string    `json:"emoji"`
}

// State is everything the board owns; it is also the persisted snapshot payload.
type State struct {
	Quests       []Quest       `json:"quests"`
	Notes        []Note        `json:"notes"`
	Stats        UserStats     `json:"stats"`
	Achievements []Achievement `json:"achievements"`
}

func (s State) clone() State {
	out := State{
		Quests:       append([]Quest(nil), s.Quests...),
		Notes:        make([]Note, len(s.Notes)),
		Stats:        s.Stats,
		Achievements: append([]Achievement(nil), s.Achievements...),
	}
	for i, n := range s.Notes {
		n.Tags = append([]string(nil), n.Tags...)
		out.Notes[i] = n
	}
	return out
}
