package scoring_test

import (
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	all := scoring.Categories()
	require.Len(t, all, scoring.CategoryCount)
	assert.Equal(t, scoring.Ones, all[0])
	assert.Equal(t, scoring.Chance, all[len(all)-1])

	assert.Len(t, scoring.UpperCategories(), 6)
	assert.Len(t, scoring.LowerCategories(), 7)

	for _, c := range scoring.UpperCategories() {
		assert.True(t, c.IsUpper(), c.String())
	}
	for _, c := range scoring.LowerCategories() {
		assert.False(t, c.IsUpper(), c.String())
		assert.Zero(t, c.Face())
	}
	assert.Equal(t, 4, scoring.Fours.Face())
	assert.False(t, scoring.Category(42).Valid())
	assert.Equal(t, "unknown", scoring.Category(42).String())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    scoring.Category
		wantErr bool
	}{
		{input: "ones", want: scoring.Ones},
		{input: "Full House", want: scoring.FullHouse},
		{input: "small-straight", want: scoring.SmallStraight},
		{input: " YAHTZEE ", want: scoring.Yahtzee},
		{input: "three_of_a_kind", want: scoring.ThreeOfAKind},
		{input: "bonus", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := scoring.ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsInvalidCategory(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory_RoundTrip(t *testing.T) {
	for _, c := range scoring.Categories() {
		got, err := scoring.ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
