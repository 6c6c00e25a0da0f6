package engine

import "fmt"

// DifficultyError reports a difficulty tier that is not in the catalog.
type DifficultyError struct {
	Value string
}

func (e DifficultyError) Error() string {
	return fmt.Sprintf("unknown difficulty %q (want trivial|moderate|hard|legendary)", e.Value)
}

// SignalModeError reports an unknown progression signal setting.
type SignalModeError struct {
	Value string
}

func (e SignalModeError) Error() string {
	return fmt.Sprintf("unknown progression signal %q (want lifetime|bar)", e.Value)
}
