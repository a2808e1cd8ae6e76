package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrMalformedInput = errors.New("malformed input")
	ErrInvalidMove    = errors.New("invalid move")
	ErrNoMove         = errors.New("no move found")

	ErrOutOfBounds  = fmt.Errorf("%w: cell is out of bounds", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
)
