package engine

import "strings"

// ParseDifficulty parses user input to a Difficulty.
// Accepts tier names, the older easy/medium names and the display labels.
func ParseDifficulty(input string) (Difficulty, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "trivial", "easy", "sahaj", "1":
		return DifficultyTrivial, nil
	case "moderate", "medium", "madhyam", "2":
		return DifficultyModerate, nil
	case "hard", "kathin", "3":
		return DifficultyHard, nil
	case "legendary", "divya", "epic", "4":
		return DifficultyLegendary, nil
	default:
		return "", DifficultyError{Value: input}
	}
}

// ParseSignalMode parses the progression.signal setting. Empty means lifetime.
func ParseSignalMode(input string) (SignalMode, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "", "lifetime", "lifetime_xp":
		return SignalLifetimeXP, nil
	case "bar", "legacy", "bar_position":
		return SignalBarPosition, nil
	default:
		return "", SignalModeError{Value: input}
	}
}
