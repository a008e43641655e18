package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	gamedomain "github.com/KirkDiggler/yahtzee/internal/domain/game"
	apperr "github.com/KirkDiggler/yahtzee/internal/errors"
	gameService "github.com/KirkDiggler/yahtzee/internal/services/game"
)

var rollNames = []string{"first", "second", "final"}

// Handler drives a game from a line-based console
type Handler struct {
	service gameService.Service
	in      *bufio.Scanner
	out     io.Writer
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	GameService gameService.Service // Required
	In          io.Reader           // Required
	Out         io.Writer           // Required
}

// NewHandler creates a console handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.GameService == nil {
		panic("game service is required")
	}
	if cfg.In == nil || cfg.Out == nil {
		panic("input and output are required")
	}

	return &Handler{
		service: cfg.GameService,
		in:      bufio.NewScanner(cfg.In),
		out:     cfg.Out,
	}
}

// Play runs a whole game with the given number of players and returns the result
func (h *Handler) Play(ctx context.Context, players int) (*gamedomain.Result, error) {
	state, err := h.service.CreateGame(ctx, &gameService.CreateGameInput{PlayerCount: players})
	if err != nil {
		return nil, err
	}

	plural := "s"
	if players == 1 {
		plural = ""
	}
	h.printf("Beginning Yahtzee game with %d player%s\n", players, plural)

	for !state.Over {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state, err = h.playTurn(ctx, state)
		if err != nil {
			return nil, err
		}
	}

	result, err := h.service.GetResult(ctx, state.ID)
	if err != nil {
		return nil, err
	}

	h.printf("%s\n", FormatResult(result))
	return result, nil
}

func (h *Handler) playTurn(ctx context.Context, state *gameService.GameState) (*gameService.GameState, error) {
	player := state.CurrentPlayer
	h.printf("Player %d's turn\n", player+1)

	state, err := h.service.RollDice(ctx, &gameService.RollDiceInput{GameID: state.ID})
	if err != nil {
		return nil, err
	}

	for state.RollsRemaining > 0 {
		h.printf("Your %s roll is %s.\n", rollNames[state.RollsTaken-1], FormatDice(state.Dice))
		h.printf("Enter the numbers of the dice you want to reroll (e.g. \"12345\" for all dice)\n")

		line, err := h.readLine()
		if err != nil {
			return nil, err
		}

		indices := ParseRerollSelection(line)
		if len(indices) == 0 {
			break
		}

		state, err = h.service.RollDice(ctx, &gameService.RollDiceInput{GameID: state.ID, Indices: indices})
		if err != nil {
			return nil, err
		}
	}

	h.printf("Your final roll is %s.\n", FormatDice(state.Dice))

	move, err := h.chooseMove(ctx, state.ID)
	if err != nil {
		return nil, err
	}

	h.printf("You scored %d in that move\n", move.Score)

	view, err := h.service.GetScorecard(ctx, state.ID, player)
	if err != nil {
		return nil, err
	}
	if err := RenderScorecard(h.out, view); err != nil {
		return nil, err
	}

	return move.Game, nil
}

// chooseMove prompts until the player names an open category
func (h *Handler) chooseMove(ctx context.Context, gameID string) (*gameService.MoveResult, error) {
	for {
		h.printf("Enter your move - one of: %s\n", CategoryKeys)

		line, err := h.readLine()
		if err != nil {
			return nil, err
		}

		category, err := ParseCategoryKey(line)
		if err != nil {
			h.printf("%v\n", err)
			continue
		}

		move, err := h.service.CommitMove(ctx, &gameService.CommitMoveInput{GameID: gameID, Category: category})
		if apperr.IsInvalidCategory(err) {
			h.printf("%s has already been scored\n", CategoryTitle(category))
			continue
		}
		if err != nil {
			return nil, err
		}

		return move, nil
	}
}

func (h *Handler) readLine() (string, error) {
	if h.in.Scan() {
		return h.in.Text(), nil
	}
	if err := h.in.Err(); err != nil {
		return "", apperr.Wrap(err, "failed to read input")
	}
	return "", apperr.Wrap(io.ErrUnexpectedEOF, "input ended before the game finished")
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}
