package engine

import "time"

// demoLifetimeXP is the sum of the level 1-4 bars (100+120+144+173) plus the demo's 320 XP.
const demoLifetimeXP = 857

// DemoState is the sample board a first launch starts from. Due dates are relative to now
// so the sample stays meaningful whenever it is first opened.
func DemoState(now time.Time) State {
	due := func(days int) DueDate { return ParseDueDate(OffsetAt(now, days)) }

	return State{
		Quests: []Quest{
			{ID: "1", Title: "Complete the project proposal", Difficulty: DifficultyHard, XPReward: 50, DueDate: due(0), Status: QuestActive, Category: "Karma"},
			{ID: "2", Title: "Read 20 pages of Bhagavad Gita", Difficulty: DifficultyTrivial, XPReward: 10, DueDate: due(0), Status: QuestActive, Category: "Vidya"},
			{ID: "3", Title: "Morning Surya Namaskar – 12 rounds", Difficulty: DifficultyModerate, XPReward: 25, DueDate: due(0), Status: QuestActive, Category: "Yoga"},
			{ID: "4", Title: "Design the landing page mockup", Difficulty: DifficultyHard, XPReward: 50, DueDate: due(1), Status: QuestActive, Category: "Karma"},
			{ID: "5", Title: "Dhyana meditation – 10 minutes", Difficulty: DifficultyTrivial, XPReward: 10, DueDate: due(0), Status: QuestActive, Category: "Sadhana"},
			{ID: "6", Title: "Defeat the Asura of Procrastination", Difficulty: DifficultyLegendary, XPReward: 100, DueDate: due(6), Status: QuestActive, Category: "Boss Quest"},
			{ID: "7", Title: "Organize workspace – Vastu style", Difficulty: DifficultyTrivial, XPReward: 10, DueDate: due(0), Status: QuestCompleted, Category: "Griha"},
			{ID: "8", Title: "Write blog post on Yoga benefits", Difficulty: DifficultyModerate, XPReward: 25, DueDate: due(-1), Status: QuestCompleted, Category: "Creative"},
		},
		Notes: []Note{
			{ID: "1", Title: "React Chakra Patterns", Content: "Compound components, render props, custom hooks – master these like Arjuna mastered the bow.", Tags: []string{"React", "Code"}, Color: "#6366F1", CreatedAt: now.Add(-2 * time.Hour), Emoji: "⚛️"},
			{ID: "2", Title: "Weekly Sankalp Plan", Content: "Ship feature X, review PRs, plan sprint. Each task a step on the path of Dharma.", Tags: []string{"Planning", "Karma"}, Color: "#0EA5E9", CreatedAt: now.Add(-5 * time.Hour), Emoji: "🎯"},
			{ID: "3", Title: "Creative Ideas Vault", Content: "AI-powered habit tracker, gamified reading app, micro-journaling with raga-based moods.", Tags: []string{"Ideas", "Creative"}, Color: "#8B5CF6", CreatedAt: now.Add(-24 * time.Hour), Emoji: "💡"},
			{ID: "4", Title: "Sprint Review Notes", Content: "Team velocity up 15%, address tech debt. Demo went as smooth as a Kathak performance!", Tags: []string{"Meeting", "Karma"}, Color: "#EC4899", CreatedAt: now.Add(-48 * time.Hour), Emoji: "📋"},
			{ID: "5", Title: "Gita Wisdom Notes", Content: "Focus on actions, not on the fruits of actions.", Tags: []string{"Wisdom", "Vidya"}, Color: "#F59E0B", CreatedAt: now.Add(-72 * time.Hour), Emoji: "🕉️"},
			{ID: "6", Title: "Yoga & Wellness Log", Content: "Surya Namaskar, Pranayama, Dhyana. Balance mind-body like the perfect Nataraja pose.", Tags: []string{"Yoga", "Wellness"}, Color: "#10B981", CreatedAt: now.Add(-96 * time.Hour), Emoji: "🧘"},
		},
		Stats: UserStats{
			Level:           5,
			XP:              320,
			XPToNext:        500,
			LifetimeXP:      demoLifetimeXP,
			Coins:           1250,
			Streak:          12,
			QuestsCompleted: 47,
			TotalQuests:     63,
			AvatarEmoji:     "🧘",
			Username:        "Yoddha",
		},
		Achievements: DefaultAchievements(),
	}
}

// FreshState is an empty board at level 1 with every achievement locked.
func FreshState() State {
	achievements := lockedAchievements()
	stats := NewStats()
	stats.AvatarEmoji = "🧘"
	stats.Username = "Yoddha"
	return State{
		Quests:       []Quest{},
		Notes:        []Note{},
		Stats:        stats,
		Achievements: achievements,
	}
}

func lockedAchievements() []Achievement {
	achievements := DefaultAchievements()
	for i := range achievements {
		achievements[i].Unlocked = false
	}
	return achievements
}

// NoteColors is the palette new notes cycle through when no colour is given.
var NoteColors = []string{"#6366F1", "#0EA5E9", "#8B5CF6", "#EC4899", "#F59E0B", "#10B981", "#F43F5E", "#06B6D4"}
