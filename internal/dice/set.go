package dice

import (
	"fmt"

	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

const (
	// DiceCount is the number of dice in a set
	DiceCount = 5

	// Sides is the number of faces on each die
	Sides = 6

	// MaxRolls is the number of rolls allowed per turn
	MaxRolls = 3
)

// Set holds the five dice of a game and the roll counter of the active turn.
// A Set is not safe for concurrent use.
type Set struct {
	roller Roller
	values [DiceCount]int
	rolls  int
}

// NewSet creates a dice set backed by roller. Values are zero until the first roll.
func NewSet(roller Roller) *Set {
	if roller == nil {
		panic("roller is required")
	}

	return &Set{roller: roller}
}

// Roll rerolls the dice at the given indices, or all five when none are given.
// Repeated indices are rolled once. Dice that are not selected keep their value.
func (s *Set) Roll(indices ...int) ([]int, error) {
	if s.rolls >= MaxRolls {
		return nil, apperr.RollLimitExceeded(MaxRolls)
	}

	selected, err := selection(indices)
	if err != nil {
		return nil, err
	}

	result, err := s.roller.Roll(len(selected), Sides)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to roll dice")
	}
	if len(result.Rolls) != len(selected) {
		return nil, apperr.Newf(apperr.CodeUnknown, "roller returned %d dice, wanted %d", len(result.Rolls), len(selected))
	}

	for _, face := range result.Rolls {
		if face < 1 || face > Sides {
			return nil, apperr.Newf(apperr.CodeUnknown, "roller returned invalid face %d for d%d", face, Sides)
		}
	}

	for i, idx := range selected {
		s.values[idx] = result.Rolls[i]
	}
	s.rolls++

	return s.Values(), nil
}

// Values returns a copy of the current face values
func (s *Set) Values() []int {
	out := make([]int, DiceCount)
	copy(out, s.values[:])
	return out
}

// Hand returns the current face values as a fixed-size array
func (s *Set) Hand() [DiceCount]int {
	return s.values
}

// RollsTaken returns how many rolls were made in the current turn
func (s *Set) RollsTaken() int {
	return s.rolls
}

// RollsRemaining returns how many rolls are left in the current turn
func (s *Set) RollsRemaining() int {
	return MaxRolls - s.rolls
}

// Reset starts a new turn. Face values are kept until the next roll.
func (s *Set) Reset() {
	s.rolls = 0
}

// selection validates indices and drops duplicates while keeping their order
func selection(indices []int) ([]int, error) {
	if len(indices) == 0 {
		return []int{0, 1, 2, 3, 4}, nil
	}

	seen := [DiceCount]bool{}
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= DiceCount {
			return nil, apperr.InvalidArgumentf("die index %d out of range", idx).
				WithMeta("index", idx)
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}

	return out, nil
}

// String renders the values as "1, 2, 3, 4, 5"
func (s *Set) String() string {
	v := s.values
	return fmt.Sprintf("%d, %d, %d, %d, %d", v[0], v[1], v[2], v[3], v[4])
}
