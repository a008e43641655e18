package dice

import (
	"fmt"
	"strings"
)

// RollResult holds the faces produced by a single Roller call
type RollResult struct {
	Total int
	Rolls []int
	Count int
	Sides int
}

// String renders the result as "[3,5,6] = 14"
func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", ",")
	return fmt.Sprintf("%s = %d", compact, r.Total)
}

func newRollResult(sides int, rolls []int) *RollResult {
	total := 0
	for _, roll := range rolls {
		total += roll
	}
	return &RollResult{
		Total: total,
		Rolls: rolls,
		Count: len(rolls),
		Sides: sides,
	}
}
