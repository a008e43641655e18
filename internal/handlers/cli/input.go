package cli

import (
	"strings"

	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

// CategoryKeys lists the one-letter shortcuts shown in the move prompt
const CategoryKeys = "123456tfhsly?"

var keyCategories = map[string]scoring.Category{
	"1": scoring.Ones,
	"2": scoring.Twos,
	"3": scoring.Threes,
	"4": scoring.Fours,
	"5": scoring.Fives,
	"6": scoring.Sixes,
	"t": scoring.ThreeOfAKind,
	"f": scoring.FourOfAKind,
	"h": scoring.FullHouse,
	"s": scoring.SmallStraight,
	"l": scoring.LargeStraight,
	"y": scoring.Yahtzee,
	"?": scoring.Chance,
}

// ParseRerollSelection turns a line such as "135" into die indices 0, 2, 4.
// Characters other than 1-5 are ignored.
func ParseRerollSelection(line string) []int {
	var indices []int
	for _, b := range []byte(line) {
		if b >= '1' && b <= '5' {
			indices = append(indices, int(b-'1'))
		}
	}
	return indices
}

// ParseCategoryKey resolves a one-letter shortcut or a full category name
func ParseCategoryKey(line string) (scoring.Category, error) {
	key := strings.ToLower(strings.TrimSpace(line))
	if key == "" {
		return 0, apperr.InvalidCategoryf("enter one of %s", CategoryKeys)
	}
	if c, ok := keyCategories[key]; ok {
		return c, nil
	}
	return scoring.ParseCategory(key)
}
