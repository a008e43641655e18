package game_test

import (
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/domain/game"
	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ScorecardTestSuite struct {
	suite.Suite
	card *game.Scorecard
}

func (s *ScorecardTestSuite) SetupTest() {
	s.card = game.NewScorecard()
}

func TestScorecardSuite(t *testing.T) {
	suite.Run(t, new(ScorecardTestSuite))
}

func (s *ScorecardTestSuite) TestNewScorecardIsEmpty() {
	s.False(s.card.IsComplete())
	s.Len(s.card.OpenCategories(), scoring.CategoryCount)
	s.Zero(s.card.GrandTotal())

	score, filled := s.card.Read(scoring.Chance)
	s.False(filled)
	s.Zero(score)
}

func (s *ScorecardTestSuite) TestRecord_ZeroIsAValidScore() {
	s.Require().NoError(s.card.Record(scoring.Yahtzee, 0))

	score, filled := s.card.Read(scoring.Yahtzee)
	s.True(filled)
	s.Zero(score)
	s.True(s.card.IsFilled(scoring.Yahtzee))
	s.NotContains(s.card.OpenCategories(), scoring.Yahtzee)
}

func (s *ScorecardTestSuite) TestRecord_Twice() {
	s.Require().NoError(s.card.Record(scoring.FullHouse, 25))

	err := s.card.Record(scoring.FullHouse, 0)
	s.Require().Error(err)
	s.True(apperr.IsCategoryAlreadyScored(err))

	score, _ := s.card.Read(scoring.FullHouse)
	s.Equal(25, score, "first value is kept")
}

func (s *ScorecardTestSuite) TestRecord_InvalidInput() {
	err := s.card.Record(scoring.Category(99), 10)
	s.True(apperr.IsInvalidCategory(err))

	err = s.card.Record(scoring.Chance, -1)
	s.True(apperr.IsInvalidArgument(err))
	s.False(s.card.IsFilled(scoring.Chance))

	_, filled := s.card.Read(scoring.Category(99))
	s.False(filled)
}

func (s *ScorecardTestSuite) TestUpperBonusAtThreshold() {
	// 3+6+9+12+15+18 = 63
	for _, c := range scoring.UpperCategories() {
		s.Require().NoError(s.card.Record(c, 3*c.Face()))
	}

	s.Equal(63, s.card.UpperSubtotal())
	s.Equal(35, s.card.UpperBonus())
	s.Equal(98, s.card.UpperTotal())
	s.Equal(98, s.card.GrandTotal())
}

func (s *ScorecardTestSuite) TestUpperBonusBelowThreshold() {
	scores := map[scoring.Category]int{
		scoring.Ones:   2,
		scoring.Twos:   6,
		scoring.Threes: 9,
		scoring.Fours:  12,
		scoring.Fives:  15,
		scoring.Sixes:  18,
	}
	for c, v := range scores {
		s.Require().NoError(s.card.Record(c, v))
	}

	s.Equal(62, s.card.UpperSubtotal())
	s.Zero(s.card.UpperBonus())
	s.Equal(62, s.card.UpperTotal())
}

func (s *ScorecardTestSuite) TestOnlyYahtzeeScored() {
	for _, c := range scoring.Categories() {
		score := 0
		if c == scoring.Yahtzee {
			score = 50
		}
		s.Require().NoError(s.card.Record(c, score))
	}

	s.True(s.card.IsComplete())
	s.Empty(s.card.OpenCategories())
	s.Equal(50, s.card.LowerSubtotal())
	s.Equal(50, s.card.GrandTotal())
}

func TestScorecard_View(t *testing.T) {
	card := game.NewScorecard()
	require.NoError(t, card.Record(scoring.Fives, 20))
	require.NoError(t, card.Record(scoring.LargeStraight, 40))

	view := card.View()
	require.Len(t, view.Upper, 6)
	require.Len(t, view.Lower, 7)
	assert.Equal(t, scoring.ThreeOfAKind, view.Lower[0].Category)
	assert.Equal(t, scoring.Chance, view.Lower[6].Category)
	assert.Equal(t, 20, view.UpperSubtotal)
	assert.Equal(t, 0, view.UpperBonus)
	assert.Equal(t, 40, view.LowerTotal)
	assert.Equal(t, 60, view.GrandTotal)
	assert.False(t, view.Complete)

	entry, ok := view.Entry(scoring.LargeStraight)
	require.True(t, ok)
	assert.True(t, entry.Filled)
	assert.Equal(t, 40, entry.Score)

	entry, ok = view.Entry(scoring.Chance)
	require.True(t, ok)
	assert.False(t, entry.Filled)

	// the snapshot is detached from the card
	require.NoError(t, card.Record(scoring.Chance, 22))
	entry, _ = view.Entry(scoring.Chance)
	assert.False(t, entry.Filled)
	assert.Equal(t, 60, view.GrandTotal)
}
