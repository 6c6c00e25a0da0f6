package engine

import "math"

const (
	// BaseXPToNext is the level 1 threshold and the fallback for a corrupt threshold.
	BaseXPToNext = 100

	// LevelGrowthFactor scales the threshold on every level-up; it compounds on the rounded value.
	LevelGrowthFactor = 1.2

	// CoinMultiplier converts granted XP into coins.
	CoinMultiplier = 2
)

// NewStats returns the stats of a fresh player.
func NewStats() UserStats {
	return UserStats{
		Level:    1,
		XPToNext: BaseXPToNext,
	}
}

type RewardResult struct {
	Stats        UserStats
	DidLevelUp   bool
	FinalLevel   int
	LevelsGained int
	CoinsEarned  int
}

// NextThreshold returns the XP needed for the level after one with threshold cur.
func NextThreshold(cur int) int {
	return int(math.Round(float64(cur) * LevelGrowthFactor))
}

// ApplyReward grants xpReward to stats, resolving every level-up it causes.
// The returned stats always satisfy 0 <= XP < XPToNext. QuestsCompleted is left to the caller.
func ApplyReward(stats UserStats, xpReward int) RewardResult {
	if xpReward < 0 {
		xpReward = 0
	}
	if stats.XPToNext <= 0 {
		stats.XPToNext = BaseXPToNext
	}
	if stats.Level < 1 {
		stats.Level = 1
	}
	if stats.XP < 0 {
		stats.XP = 0
	}

	coins := xpReward * CoinMultiplier
	stats.XP += xpReward
	stats.LifetimeXP += xpReward
	stats.Coins += coins

	gained := 0
	for stats.XP >= stats.XPToNext {
		stats.XP -= stats.XPToNext
		stats.Level++
		stats.XPToNext = NextThreshold(stats.XPToNext)
		gained++
	}

	return RewardResult{
		Stats:        stats,
		DidLevelUp:   gained > 0,
		FinalLevel:   stats.Level,
		LevelsGained: gained,
		CoinsEarned:  coins,
	}
}

// SignalMode selects which number achievement thresholds are compared against.
type SignalMode string

const (
	// SignalLifetimeXP compares against total XP ever earned.
	SignalLifetimeXP SignalMode = "lifetime"
	// SignalBarPosition compares against XP inside the current level, which resets on level-up.
	// Kept for boards that expect the older unlock behaviour.
	SignalBarPosition SignalMode = "bar"
)

func (m SignalMode) Signal(stats UserStats) int {
	if m == SignalBarPosition {
		return stats.XP
	}
	return stats.LifetimeXP
}
