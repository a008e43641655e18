package scoring

import (
	"strings"

	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

// Category is one of the thirteen scorecard slots
type Category int

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance
)

// CategoryCount is the number of categories on a scorecard
const CategoryCount = 13

var categoryKeys = [CategoryCount]string{
	Ones:          "ones",
	Twos:          "twos",
	Threes:        "threes",
	Fours:         "fours",
	Fives:         "fives",
	Sixes:         "sixes",
	ThreeOfAKind:  "three_of_a_kind",
	FourOfAKind:   "four_of_a_kind",
	FullHouse:     "full_house",
	SmallStraight: "small_straight",
	LargeStraight: "large_straight",
	Yahtzee:       "yahtzee",
	Chance:        "chance",
}

// Categories returns every category in scorecard order
func Categories() []Category {
	out := make([]Category, CategoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// UpperCategories returns the six number categories
func UpperCategories() []Category {
	return []Category{Ones, Twos, Threes, Fours, Fives, Sixes}
}

// LowerCategories returns the seven combination categories
func LowerCategories() []Category {
	return []Category{ThreeOfAKind, FourOfAKind, FullHouse, SmallStraight, LargeStraight, Yahtzee, Chance}
}

// Valid reports whether c is one of the thirteen categories
func (c Category) Valid() bool {
	return c >= Ones && c <= Chance
}

// IsUpper reports whether c belongs to the upper section
func (c Category) IsUpper() bool {
	return c >= Ones && c <= Sixes
}

// Face returns the die value counted by an upper category, or 0
func (c Category) Face() int {
	if !c.IsUpper() {
		return 0
	}
	return int(c-Ones) + 1
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryKeys[c]
}

// ParseCategory resolves a category key such as "full_house", "Full House" or "full-house"
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	for i, k := range categoryKeys {
		if k == key {
			return Category(i), nil
		}
	}

	return 0, apperr.InvalidCategoryf("no such category %q", s).WithMeta("category", s)
}
