package cli_test

import (
	"testing"

	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
	"github.com/KirkDiggler/yahtzee/internal/handlers/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRerollSelection(t *testing.T) {
	tests := []struct {
		line string
		want []int
	}{
		{line: "12345", want: []int{0, 1, 2, 3, 4}},
		{line: "1 3 5", want: []int{0, 2, 4}},
		{line: "6790", want: nil},
		{line: "", want: nil},
		{line: "22", want: []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ParseRerollSelection(tt.line))
		})
	}
}

func TestParseCategoryKey(t *testing.T) {
	tests := []struct {
		line    string
		want    scoring.Category
		wantErr bool
	}{
		{line: "1", want: scoring.Ones},
		{line: "6", want: scoring.Sixes},
		{line: "t", want: scoring.ThreeOfAKind},
		{line: "F", want: scoring.FourOfAKind},
		{line: "h", want: scoring.FullHouse},
		{line: "s", want: scoring.SmallStraight},
		{line: "l", want: scoring.LargeStraight},
		{line: "y", want: scoring.Yahtzee},
		{line: " ? ", want: scoring.Chance},
		{line: "full house", want: scoring.FullHouse},
		{line: "7", wantErr: true},
		{line: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := cli.ParseCategoryKey(tt.line)
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
