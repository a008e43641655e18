package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
)

func TestError_Message(t *testing.T) {
	err := apperr.InvalidArgument("player count must be positive")
	assert.Equal(t, "player count must be positive", err.Error())

	wrapped := apperr.Wrap(err, "failed to create game")
	assert.Equal(t, "failed to create game: player count must be positive", wrapped.Error())
	assert.Equal(t, apperr.CodeInvalidArgument, wrapped.Code)
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
	assert.Nil(t, apperr.Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, apperr.WrapWithCode(nil, apperr.CodeNotFound, "nothing"))
}

func TestWrap_PlainError(t *testing.T) {
	cause := errors.New("disk on fire")
	err := apperr.Wrap(cause, "failed to save game")

	assert.Equal(t, apperr.CodeUnknown, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestWrap_KeepsCodeAndMeta(t *testing.T) {
	err := apperr.NotFoundf("game %s not found", "game-1").WithMeta("game_id", "game-1")
	wrapped := apperr.Wrapf(err, "failed to get game %s", "game-1")

	assert.True(t, apperr.IsNotFound(wrapped))
	assert.Equal(t, "game-1", apperr.GetMeta(wrapped)["game_id"])

	// The wrapper has its own copy of the metadata
	wrapped.WithMeta("attempt", 2)
	_, ok := err.Meta["attempt"]
	assert.False(t, ok)
}

func TestIs_WalksTheChain(t *testing.T) {
	scored := apperr.CategoryAlreadyScored("chance")
	err := apperr.WrapWithCode(scored, apperr.CodeInvalidCategory, "illegal move")

	assert.Equal(t, apperr.CodeInvalidCategory, apperr.GetCode(err))
	assert.True(t, apperr.IsInvalidCategory(err))
	assert.True(t, apperr.IsCategoryAlreadyScored(err))
	assert.False(t, apperr.IsNotFound(err))

	viaFmt := fmt.Errorf("turn failed: %w", err)
	assert.True(t, apperr.IsCategoryAlreadyScored(viaFmt))
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		code  apperr.Code
	}{
		{name: "not found", err: apperr.NotFoundf("missing %d", 1), check: apperr.IsNotFound, code: apperr.CodeNotFound},
		{name: "invalid argument", err: apperr.InvalidArgumentf("bad %s", "input"), check: apperr.IsInvalidArgument, code: apperr.CodeInvalidArgument},
		{name: "already exists", err: apperr.AlreadyExistsf("game %s", "g"), check: apperr.IsAlreadyExists, code: apperr.CodeAlreadyExists},
		{name: "failed precondition", err: apperr.FailedPrecondition("roll first"), check: apperr.IsFailedPrecondition, code: apperr.CodeFailedPrecondition},
		{name: "roll limit", err: apperr.RollLimitExceeded(3), check: apperr.IsRollLimitExceeded, code: apperr.CodeRollLimitExceeded},
		{name: "invalid category", err: apperr.InvalidCategoryf("no such category %q", "x"), check: apperr.IsInvalidCategory, code: apperr.CodeInvalidCategory},
		{name: "game over", err: apperr.GameOver("game-1"), check: apperr.IsGameOver, code: apperr.CodeGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.code, apperr.GetCode(tt.err))
		})
	}
}

func TestRollLimitExceeded_Meta(t *testing.T) {
	err := apperr.RollLimitExceeded(3)
	require.NotNil(t, err.Meta)
	assert.Equal(t, 3, err.Meta["limit"])
	assert.Contains(t, err.Error(), "3 rolls")
}

func TestGetCode_NonAppError(t *testing.T) {
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(errors.New("plain")))
	assert.Nil(t, apperr.GetMeta(errors.New("plain")))
	assert.False(t, apperr.IsNotFound(nil))
}
