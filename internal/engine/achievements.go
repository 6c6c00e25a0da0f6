package engine

// Evaluation is the result of checking achievements against a progression signal.
type Evaluation struct {
	Updated       []Achievement
	NewlyUnlocked []Achievement
}

// EvaluateAchievements unlocks every locked achievement whose threshold signal has reached.
// The input slice is not modified. Unlocked achievements never re-lock.
func EvaluateAchievements(all []Achievement, signal int) Evaluation {
	updated := make([]Achievement, len(all))
	var newly []Achievement
	for i, a := range all {
		if !a.Unlocked && signal >= a.XPRequired {
			a.Unlocked = true
			newly = append(newly, a)
		}
		updated[i] = a
	}
	return Evaluation{Updated: updated, NewlyUnlocked: newly}
}

// CountUnlocked returns how many achievements are unlocked.
func CountUnlocked(all []Achievement) int {
	n := 0
	for _, a := range all {
		if a.Unlocked {
			n++
		}
	}
	return n
}

// NextAchievement returns the locked achievement with the lowest threshold, if any.
func NextAchievement(all []Achievement) (Achievement, bool) {
	var next Achievement
	found := false
	for _, a := range all {
		if a.Unlocked {
			continue
		}
		if !found || a.XPRequired < next.XPRequired {
			next = a
			found = true
		}
	}
	return next, found
}

// DefaultAchievements returns the built-in achievement catalog.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "1", Title: "Arjuna's First Arrow", Description: "Complete your first karma quest", Icon: "🏹", Unlocked: true, XPRequired: 0, Rarity: RarityCommon},
		{ID: "2", Title: "Hanuman's Devotion", Description: "Reach a 3-day tapasya streak", Icon: "🪔", Unlocked: true, XPRequired: 50, Rarity: RarityCommon},
		{ID: "3", Title: "Saraswati's Blessing", Description: "Create 5 vidya scrolls", Icon: "🪷", Unlocked: true, XPRequired: 100, Rarity: RarityRare},
		{ID: "4", Title: "Karma Yogi", Description: "Complete 10 quests", Icon: "🕉️", Unlocked: true, XPRequired: 200, Rarity: RarityRare},
		{ID: "5", Title: "Durga's Shield", Description: "Complete a Kathin quest", Icon: "🛡️", Unlocked: true, XPRequired: 300, Rarity: RarityEpic},
		{ID: "6", Title: "Vayu's Speed", Description: "Complete 5 quests in one day", Icon: "💨", Unlocked: false, XPRequired: 400, Rarity: RarityEpic},
		{ID: "7", Title: "Chakravarti", Description: "Reach Level 10", Icon: "👑", Unlocked: false, XPRequired: 500, Rarity: RarityLegendary},
		{ID: "8", Title: "Vidya Guru", Description: "Create 20 knowledge scrolls", Icon: "📿", Unlocked: false, XPRequired: 600, Rarity: RarityLegendary},
		{ID: "9", Title: "Tapasvi Supreme", Description: "30-day tapasya streak", Icon: "💎", Unlocked: false, XPRequired: 800, Rarity: RarityLegendary},
		{ID: "10", Title: "Moksha", Description: "Unlock all achievements", Icon: "✨", Unlocked: false, XPRequired: 1000, Rarity: RarityLegendary},
		{ID: "11", Title: "Brahma Muhurta", Description: "Complete quest before dawn", Icon: "🌅", Unlocked: false, XPRequired: 150, Rarity: RarityRare},
		{ID: "12", Title: "Chandra Dev", Description: "Create a scroll after midnight", Icon: "🌙", Unlocked: false, XPRequired: 250, Rarity: RarityRare},
	}
}
