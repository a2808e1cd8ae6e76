package entity

import (
	"errors"
	"fmt"
)

// Mode is selected once at startup and fixed for the whole game.
type Mode int

const (
	ModeUnset          Mode = 0
	ModeVersusComputer Mode = 1
	ModeTwoPlayers     Mode = 2
)

var ErrUnknownMode = errors.New("unknown game mode")

func ParseMode(value int) (Mode, error) {
	mode := Mode(value)
	if !mode.IsValid() {
		return ModeUnset, fmt.Errorf("%w: %d", ErrUnknownMode, value)
	}

	return mode, nil
}

func (m Mode) IsValid() bool {
	return m == ModeVersusComputer || m == ModeTwoPlayers
}

func (m Mode) String() string {
	switch m {
	case ModeVersusComputer:
		return "versus_computer"
	case ModeTwoPlayers:
		return "two_players"
	default:
		return "unset"
	}
}

// Game is the state of one session. Status is always derived from the board.
type Game struct {
	ID    string
	Mode  Mode
	Board Board
	Turn  Mark
}

func NewGame(id string, mode Mode) *Game {
	return &Game{
		ID:   id,
		Mode: mode,
		Turn: MarkA,
	}
}

func (that *Game) Outcome() Outcome {
	return that.Board.Outcome()
}

func (that *Game) IsFinished() bool {
	return that.Outcome().IsTerminal()
}

// IsComputerTurn reports whether the search should supply the next move.
func (that *Game) IsComputerTurn() bool {
	return that.Mode == ModeVersusComputer && that.Turn == MarkB
}

func (that *Game) ToggleTurn() {
	that.Turn = that.Turn.Opponent()
}
