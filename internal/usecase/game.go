package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type GameUseCase interface {
	Play(ctx context.Context, mode entity.Mode) (*entity.Game, error)
}

type playerInput interface {
	ReadMove(ctx context.Context, mark entity.Mark) (entity.Move, error)
}

type gameView interface {
	ShowBoard(board *entity.Board)
	ShowTurn(game *entity.Game)
	ShowError(err error)
	ShowResult(game *entity.Game)
}

type botService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type gameController interface {
	MakeTurn(game *entity.Game, mark entity.Mark, move entity.Move) error
}

type gameUseCase struct {
	logger     *slog.Logger
	input      playerInput
	view       gameView
	bot        botService
	controller gameController
}

func NewGameUseCase(
	logger *slog.Logger,
	input playerInput,
	view gameView,
	bot botService,
	controller gameController,
) GameUseCase {
	return &gameUseCase{
		logger:     logger,
		input:      input,
		view:       view,
		bot:        bot,
		controller: controller,
	}
}

// Play runs one game from an empty board until a line is completed or the board is full.
func (that *gameUseCase) Play(ctx context.Context, mode entity.Mode) (*entity.Game, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %d", entity.ErrUnknownMode, mode)
	}

	game := entity.NewGame(uuid.NewString(), mode)
	log := that.logger.With("component", "game", "game_id", game.ID)
	log.Info("game started", "mode", mode.String())

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return game, fmt.Errorf("game interrupted: %w", err)
		}

		that.view.ShowBoard(&game.Board)
		that.view.ShowTurn(game)

		mark := game.Turn

		var (
			move entity.Move
			err  error
		)
		if game.IsComputerTurn() {
			if move, err = that.bot.MakeTurn(game); err != nil {
				err = fmt.Errorf("computer failed to move: %w", err)
			}
		} else {
			move, err = that.humanTurn(ctx, game)
		}

		if err != nil {
			return game, err
		}

		log.Debug("turn played", "mark", mark.String(), "row", move.Row, "col", move.Col)
	}

	that.view.ShowBoard(&game.Board)
	that.view.ShowResult(game)

	log.Info("game finished", "outcome", game.Outcome().String(), "marks_placed", game.Board.MarksPlaced())

	return game, nil
}

// humanTurn prompts until a well-formed legal move has been applied.
func (that *gameUseCase) humanTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	for {
		move, err := that.input.ReadMove(ctx, game.Turn)
		if err != nil {
			if errors.Is(err, apperror.ErrMalformedInput) {
				that.view.ShowError(err)
				continue
			}

			return move, fmt.Errorf("failed to read move: %w", err)
		}

		if err = that.controller.MakeTurn(game, game.Turn, move); err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) {
				that.view.ShowError(err)
				continue
			}

			return move, fmt.Errorf("failed to make turn: %w", err)
		}

		return move, nil
	}
}
