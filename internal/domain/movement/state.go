package movement

import "strings"

// State is a set of locomotion flags describing what a character did this tick.
// Flags are not inherited between ticks; a mode must re-assert every flag that still holds.
type State uint8

const (
	Idle     State = 0
	Moving   State = 1
	Grounded State = 2
	Jumping  State = 4
	Dashing  State = 8
	Running  State = 16
	Dead     State = 32
)

var stateNames = []struct {
	flag State
	name string
}{
	{Moving, "Moving"},
	{Grounded, "Grounded"},
	{Jumping, "Jumping"},
	{Dashing, "Dashing"},
	{Running, "Running"},
	{Dead, "Dead"},
}

// Has reports whether every bit of flag is set
func (s State) Has(flag State) bool {
	return s&flag == flag
}

// With returns s with flag set
func (s State) With(flag State) State {
	return s | flag
}

// Without returns s with flag cleared
func (s State) Without(flag State) State {
	return s &^ flag
}

// String returns the set flags joined with "|", or "Idle"
func (s State) String() string {
	if s == Idle {
		return "Idle"
	}
	var parts []string
	for _, n := range stateNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
