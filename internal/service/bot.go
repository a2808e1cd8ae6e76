package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type searcher interface {
	BestMove(board *entity.Board) (entity.Move, int, error)
}

type gameController interface {
	MakeTurn(game *entity.Game, mark entity.Mark, move entity.Move) error
}

type botService struct {
	logger     *slog.Logger
	searcher   searcher
	controller gameController
	randIntN   func(n int) int
}

func NewBotService(logger *slog.Logger, searcher searcher, controller gameController) BotService {
	return &botService{
		logger:     logger.With("component", "bot"),
		searcher:   searcher,
		controller: controller,
		randIntN:   rand.IntN,
	}
}

// MakeTurn plays the search's move for the side to move. A search that finds
// nothing is a caller defect; it is logged and a random empty cell is played instead.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	move, score, err := that.searcher.BestMove(&game.Board)
	switch {
	case errors.Is(err, apperror.ErrNoMove):
		that.logger.Error("search returned no move, falling back to a random cell",
			"game_id", game.ID, "marks_placed", game.Board.MarksPlaced())

		move, err = that.randomMove(&game.Board)
		if err != nil {
			return move, err
		}
	case err != nil:
		return move, fmt.Errorf("search failed: %w", err)
	default:
		that.logger.Debug("search picked a move",
			"game_id", game.ID, "row", move.Row, "col", move.Col, "score", score)
	}

	if err = that.controller.MakeTurn(game, game.Turn, move); err != nil {
		return move, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

func (that *botService) randomMove(board *entity.Board) (entity.Move, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Move{Row: -1, Col: -1}, ErrNoAvailableMoves
	}

	return availableCells[that.randIntN(len(availableCells))], nil
}
