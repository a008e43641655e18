package scoring

import (
	"slices"

	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50
)

// Hand is the five face values being scored, each in [1,6]
type Hand [5]int

// Sum returns the total of all five dice
func (h Hand) Sum() int {
	total := 0
	for _, d := range h {
		total += d
	}
	return total
}

func (h Hand) sorted() Hand {
	s := h
	slices.Sort(s[:])
	return s
}

func (h Hand) count(face int) int {
	n := 0
	for _, d := range h {
		if d == face {
			n++
		}
	}
	return n
}

// Score returns what hand is worth in category c. The only failure is a
// category outside the thirteen known ones.
func Score(c Category, h Hand) (int, error) {
	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		return c.Face() * h.count(c.Face()), nil
	case ThreeOfAKind:
		return ofAKind(h, 3), nil
	case FourOfAKind:
		return ofAKind(h, 4), nil
	case FullHouse:
		return fullHouse(h), nil
	case SmallStraight:
		return smallStraight(h), nil
	case LargeStraight:
		return largeStraight(h), nil
	case Yahtzee:
		return yahtzee(h), nil
	case Chance:
		return h.Sum(), nil
	}

	return 0, apperr.InvalidCategoryf("no such category %d", int(c)).WithMeta("category", int(c))
}

// ScoreAll returns the score of hand in every category
func ScoreAll(h Hand) map[Category]int {
	out := make(map[Category]int, CategoryCount)
	for _, c := range Categories() {
		// every value from Categories is valid
		out[c], _ = Score(c, h)
	}
	return out
}

// ofAKind compares against the middle die of the sorted hand. Any face shown
// three or more times must occupy that position.
func ofAKind(h Hand, n int) int {
	if h.count(h.sorted()[2]) >= n {
		return h.Sum()
	}
	return 0
}

func fullHouse(h Hand) int {
	s := h.sorted()
	if s[0] == s[4] {
		return 0
	}
	// two distinct values split 2/3 or 3/2
	if s[0] == s[1] && s[3] == s[4] && (s[2] == s[1] || s[2] == s[3]) {
		return FullHouseScore
	}
	return 0
}

func smallStraight(h Hand) int {
	var present [7]bool
	for _, d := range h {
		if d >= 1 && d <= 6 {
			present[d] = true
		}
	}

	for start := 1; start <= 3; start++ {
		if present[start] && present[start+1] && present[start+2] && present[start+3] {
			return SmallStraightScore
		}
	}
	return 0
}

func largeStraight(h Hand) int {
	s := h.sorted()
	if s == (Hand{1, 2, 3, 4, 5}) || s == (Hand{2, 3, 4, 5, 6}) {
		return LargeStraightScore
	}
	return 0
}

func yahtzee(h Hand) int {
	if h.count(h[0]) == len(h) {
		return YahtzeeScore
	}
	return 0
}
