package autoplay_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	mockdice "github.com/KirkDiggler/yahtzee/internal/dice/mock"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
	"github.com/KirkDiggler/yahtzee/internal/services/autoplay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayGame_AllYahtzees(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	for i := 0; i < 13; i++ {
		roller.AddRolls(6, 6, 6, 6, 6)
	}

	view, err := autoplay.PlayGame(roller)
	require.NoError(t, err)
	assert.True(t, view.Complete)

	// yahtzee first, then sixes, three and four of a kind, chance; the rest score zero
	assert.Equal(t, 30, view.UpperSubtotal)
	assert.Equal(t, 0, view.UpperBonus)
	assert.Equal(t, 30+50+30+30+30, view.GrandTotal)
	assert.Equal(t, 0, roller.Remaining())
}

func TestPlayGame_RollerRunsDry(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.AddRolls(1, 2, 3, 4, 5)

	_, err := autoplay.PlayGame(roller)
	assert.Error(t, err)
}

func TestService_Run(t *testing.T) {
	svc := autoplay.NewService(nil)

	summary, err := svc.Run(context.Background(), &autoplay.RunInput{Games: 50, Workers: 4, Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, 50, summary.Games)
	assert.GreaterOrEqual(t, summary.Max, summary.Min)
	assert.GreaterOrEqual(t, summary.Mean, float64(summary.Min))
	assert.LessOrEqual(t, summary.Mean, float64(summary.Max))
	assert.GreaterOrEqual(t, summary.Min, 5)
	assert.GreaterOrEqual(t, summary.BonusRate, 0.0)
	assert.LessOrEqual(t, summary.BonusRate, 1.0)
}

func TestService_RunIsReproducible(t *testing.T) {
	svc := autoplay.NewService(&autoplay.ServiceConfig{NewRoller: dice.NewSeededRoller})

	first, err := svc.Run(context.Background(), &autoplay.RunInput{Games: 20, Workers: 3, Seed: 11})
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), &autoplay.RunInput{Games: 20, Workers: 1, Seed: 11})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_RunInvalidInput(t *testing.T) {
	svc := autoplay.NewService(nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *autoplay.RunInput
	}{
		{name: "nil", input: nil},
		{name: "no games", input: &autoplay.RunInput{Games: 0, Workers: 1}},
		{name: "no workers", input: &autoplay.RunInput{Games: 1, Workers: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Run(ctx, tt.input)
			assert.True(t, apperr.IsInvalidArgument(err))
		})
	}
}

func TestService_RunCancelled(t *testing.T) {
	svc := autoplay.NewService(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx, &autoplay.RunInput{Games: 10, Workers: 2, Seed: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
