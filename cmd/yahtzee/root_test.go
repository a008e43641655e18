package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayers(t *testing.T) {
	tests := []struct {
		arg  string
		want int
	}{
		{arg: "3", want: 3},
		{arg: "0", want: 1},
		{arg: "-2", want: 1},
		{arg: "many", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePlayers(tt.arg))
		})
	}
}

func TestRootCommand_PlaysAGame(t *testing.T) {
	var input strings.Builder
	for _, key := range []string{"1", "2", "3", "4", "5", "6", "t", "f", "h", "s", "l", "y", "?"} {
		input.WriteString("\n" + key + "\n")
	}

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetIn(strings.NewReader(input.String()))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--seed", "5", "1"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Beginning Yahtzee game with 1 player\n")
	assert.Contains(t, out.String(), "The winner is player 1 with a score of")
}

func TestSimulateCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"simulate", "--games", "5", "--workers", "2", "--seed", "3"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Games:     5")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "yahtzee version dev")
}
