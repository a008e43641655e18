package cli_test

import (
	"bytes"
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/domain/game"
	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
	"github.com/KirkDiggler/yahtzee/internal/handlers/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Full House", cli.CategoryTitle(scoring.FullHouse))
	assert.Equal(t, "Ones", cli.CategoryTitle(scoring.Ones))
	assert.Equal(t, "Three Of A Kind", cli.CategoryTitle(scoring.ThreeOfAKind))
}

func TestRenderScorecard(t *testing.T) {
	card := game.NewScorecard()
	require.NoError(t, card.Record(scoring.Sixes, 24))
	require.NoError(t, card.Record(scoring.Chance, 0))

	var buf bytes.Buffer
	require.NoError(t, cli.RenderScorecard(&buf, card.View()))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 17)
	assert.Equal(t, "Ones             -", string(lines[0]))
	assert.Equal(t, "Sixes            24", string(lines[5]))
	assert.Equal(t, "Bonus            0", string(lines[6]))
	assert.Equal(t, "Upper Total      24", string(lines[7]))
	assert.Equal(t, "Chance           0", string(lines[14]))
	assert.Equal(t, "Grand Total      24", string(lines[16]))
}

func TestFormatDice(t *testing.T) {
	assert.Equal(t, "1, 2, 3, 4, 5", cli.FormatDice([]int{1, 2, 3, 4, 5}))
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "The winner is player 2 with a score of 200",
		cli.FormatResult(&game.Result{Winners: []int{1}, TopScore: 200}))
	assert.Equal(t, "It's a tie between players 1, 3 with a score of 150",
		cli.FormatResult(&game.Result{Winners: []int{0, 2}, TopScore: 150, Tie: true}))
}
