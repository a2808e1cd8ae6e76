package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// GameController applies legality-checked moves to a game.
type GameController struct{}

func NewGameController() *GameController {
	return &GameController{}
}

func (that *GameController) MakeTurn(game *entity.Game, mark entity.Mark, move entity.Move) error {
	return MakeTurn(game, mark, move)
}

// MakeTurn places mark at move and flips the turn unless the game just ended.
// The board is left untouched on every error path.
func MakeTurn(game *entity.Game, mark entity.Mark, move entity.Move) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board.Place(move, mark)

	if !game.IsFinished() {
		game.ToggleTurn()
	}

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark entity.Mark, move entity.Move) error {
	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if !move.InBounds() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, move.Row, move.Col)
	}

	if !game.Board.IsEmpty(move) {
		return apperror.ErrCellOccupied
	}

	return nil
}
