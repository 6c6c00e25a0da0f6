package engine

// DifficultyInfo is the catalog entry for one tier.
type DifficultyInfo struct {
	Difficulty Difficulty
	Label      string
	XP         int
	Color      string // lipgloss ANSI colour hint
}

var difficultyCatalog = map[Difficulty]DifficultyInfo{
	DifficultyTrivial:   {Difficulty: DifficultyTrivial, Label: "Sahaj", XP: 10, Color: "42"},
	DifficultyModerate:  {Difficulty: DifficultyModerate, Label: "Madhyam", XP: 25, Color: "214"},
	DifficultyHard:      {Difficulty: DifficultyHard, Label: "Kathin", XP: 50, Color: "196"},
	DifficultyLegendary: {Difficulty: DifficultyLegendary, Label: "Divya", XP: 100, Color: "135"},
}

// Difficulties lists the tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyTrivial, DifficultyModerate, DifficultyHard, DifficultyLegendary}
}

// LookupDifficulty returns the catalog entry for d.
func LookupDifficulty(d Difficulty) (DifficultyInfo, error) {
	info, ok := difficultyCatalog[d]
	if !ok {
		return DifficultyInfo{}, DifficultyError{Value: string(d)}
	}
	return info, nil
}

// XPForDifficulty is the reward a new quest of tier d is frozen with.
func XPForDifficulty(d Difficulty) (int, error) {
	info, err := LookupDifficulty(d)
	if err != nil {
		return 0, err
	}
	return info.XP, nil
}
