package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, Options{}), out
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    entity.Move
		wantErr bool
	}{
		{name: "Space separated", line: "1 3", want: entity.Move{Row: 0, Col: 2}},
		{name: "Tabs and padding", line: "\t2\t\t2  ", want: entity.Move{Row: 1, Col: 1}},
		{name: "Extra tokens are ignored", line: "3 1 9", want: entity.Move{Row: 2, Col: 0}},
		{name: "Out of range still parses", line: "0 4", want: entity.Move{Row: -1, Col: 3}},
		{name: "Missing column", line: "2", wantErr: true},
		{name: "Empty line", line: "", wantErr: true},
		{name: "Not a number", line: "a b", wantErr: true},
		{name: "Column not a number", line: "1 x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.line)
			if tt.wantErr {
				require.ErrorIs(t, err, apperror.ErrMalformedInput)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeedsMoreTokens(t *testing.T) {
	assert.True(t, needsMoreTokens(nil))
	assert.True(t, needsMoreTokens([]string{"2"}))
	assert.False(t, needsMoreTokens([]string{"x"}))
	assert.False(t, needsMoreTokens([]string{"2", "3"}))
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode(" 1 ")
	require.NoError(t, err)
	assert.Equal(t, entity.ModeVersusComputer, mode)

	mode, err = ParseMode("2")
	require.NoError(t, err)
	assert.Equal(t, entity.ModeTwoPlayers, mode)

	_, err = ParseMode("3")
	require.ErrorIs(t, err, apperror.ErrMalformedInput)
	require.ErrorIs(t, err, entity.ErrUnknownMode)
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("-17")
	require.NoError(t, err)
	assert.Equal(t, int64(-17), n)

	_, err = ParseNumber("seventeen")
	require.ErrorIs(t, err, apperror.ErrMalformedInput)
}

func TestConsole_ReadMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Prompts with the mark symbol", func(t *testing.T) {
		// Given: a console with one answer
		cons, out := newTestConsole("2 3\n")

		// When: reading a move for B
		move, err := cons.ReadMove(ctx, entity.MarkB)

		// Then: the move is 0-indexed and the prompt names player O
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
		assert.Equal(t, "Player O move (row col): ", out.String())
	})

	t.Run("Last line without newline", func(t *testing.T) {
		cons, _ := newTestConsole("1 1")

		move, err := cons.ReadMove(ctx, entity.MarkA)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Malformed line", func(t *testing.T) {
		cons, _ := newTestConsole("hello\r\n")

		_, err := cons.ReadMove(ctx, entity.MarkA)

		require.ErrorIs(t, err, apperror.ErrMalformedInput)
	})

	t.Run("Row and column on separate lines", func(t *testing.T) {
		// Given: the row and the column each on its own line, with a blank line between
		cons, out := newTestConsole("2\n\n3\n")

		// When: reading a move
		move, err := cons.ReadMove(ctx, entity.MarkA)

		// Then: both tokens form one move and the prompt was shown once
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)
		assert.Equal(t, "Player X move (row col): ", out.String())
	})

	t.Run("Bad token on the continuation line", func(t *testing.T) {
		// Given: a row, then a line starting with a word, then a full move
		cons, _ := newTestConsole("2\nx 3\n1 1\n")

		// When: reading twice
		_, err := cons.ReadMove(ctx, entity.MarkA)
		require.ErrorIs(t, err, apperror.ErrMalformedInput)

		move, err := cons.ReadMove(ctx, entity.MarkA)

		// Then: the rest of the bad line was dropped and the next line is a fresh move
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("End of input after the row", func(t *testing.T) {
		cons, _ := newTestConsole("2\n")

		_, err := cons.ReadMove(ctx, entity.MarkA)

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("End of input", func(t *testing.T) {
		cons, _ := newTestConsole("")

		_, err := cons.ReadMove(ctx, entity.MarkA)

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_ReadMode(t *testing.T) {
	// Given: two invalid answers before a valid one
	cons, out := newTestConsole("abc\n7\n2\n")

	// When: reading the mode
	mode, err := cons.ReadMode(context.Background())

	// Then: the menu was re-prompted twice
	require.NoError(t, err)
	assert.Equal(t, entity.ModeTwoPlayers, mode)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter 1 or 2: "))
}

func TestConsole_ReadNumber(t *testing.T) {
	cons, out := newTestConsole("x\n97\n")

	n, err := cons.ReadNumber(context.Background(), "N: ")

	require.NoError(t, err)
	assert.Equal(t, int64(97), n)
	assert.Equal(t, "N: Invalid input. Enter a whole number.\nN: ", out.String())
}

func TestConsole_ShowBoard(t *testing.T) {
	t.Run("Renders marks with separators", func(t *testing.T) {
		// Given: a board with one mark each
		cons, out := newTestConsole("")
		board := entity.Board{}
		board.Place(entity.Move{Row: 0, Col: 0}, entity.MarkA)
		board.Place(entity.Move{Row: 1, Col: 2}, entity.MarkB)

		// When: showing the board
		cons.ShowBoard(&board)

		// Then: the grid matches the expected layout
		expected := "\n  Tic-Tac-Toe\n\n" +
			"     1   2   3\n" +
			"   -------------\n" +
			" 1 | X |   |   |\n" +
			"   -------------\n" +
			" 2 |   |   | O |\n" +
			"   -------------\n" +
			" 3 |   |   |   |\n" +
			"   -------------\n\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Clears the screen and uses custom symbols", func(t *testing.T) {
		out := &bytes.Buffer{}
		cons := New(strings.NewReader(""), out, Options{ClearScreen: true, SymbolA: "#", SymbolB: "@"})
		board := entity.Board{{entity.MarkA, entity.MarkB}}

		cons.ShowBoard(&board)

		assert.True(t, strings.HasPrefix(out.String(), clearSequence))
		assert.Contains(t, out.String(), " 1 | # | @ |   |\n")
	})
}

func TestConsole_ShowTurnAndResult(t *testing.T) {
	cases := []struct {
		name   string
		mode   entity.Mode
		turn   entity.Mark
		board  entity.Board
		turnTx string
		result string
	}{
		{
			name:   "Two players, A wins",
			mode:   entity.ModeTwoPlayers,
			turn:   entity.MarkB,
			board:  entity.Board{{entity.MarkA, entity.MarkA, entity.MarkA}},
			turnTx: "Turn: Player O\n",
			result: "Player X wins!\n",
		},
		{
			name:   "Computer turn, computer wins",
			mode:   entity.ModeVersusComputer,
			turn:   entity.MarkB,
			board:  entity.Board{{entity.MarkB, entity.MarkB, entity.MarkB}},
			turnTx: "Computer is thinking...\n",
			result: "Computer wins!\n",
		},
		{
			name:  "Human turn, draw",
			mode:  entity.ModeVersusComputer,
			turn:  entity.MarkA,
			board: entity.Board{
				{entity.MarkA, entity.MarkB, entity.MarkA},
				{entity.MarkA, entity.MarkB, entity.MarkB},
				{entity.MarkB, entity.MarkA, entity.MarkA},
			},
			turnTx: "Your turn (X).\n",
			result: "It's a draw!\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			game := entity.NewGame("id", tc.mode)
			game.Turn = tc.turn
			game.Board = tc.board

			cons, out := newTestConsole("")
			cons.ShowTurn(game)
			assert.Equal(t, tc.turnTx, out.String())

			out.Reset()
			cons.ShowResult(game)
			assert.Equal(t, tc.result, out.String())
		})
	}
}

func TestConsole_ShowError(t *testing.T) {
	cons, out := newTestConsole("")

	cons.ShowError(apperror.ErrMalformedInput)
	cons.ShowError(apperror.ErrOutOfBounds)
	cons.ShowError(apperror.ErrCellOccupied)

	assert.Equal(t, "Invalid input. Enter two numbers like: 1 3\n"+
		"Rows and columns must be between 1 and 3.\n"+
		"That cell is already taken. Choose another.\n", out.String())
}

func TestConsole_ShowPrimeVerdict(t *testing.T) {
	cons, out := newTestConsole("")

	cons.ShowPrimeVerdict(97, true)
	cons.ShowPrimeVerdict(100, false)

	assert.Equal(t, "97 IS A PRIME NUMBER\n100 IS NOT A PRIME NUMBER\n", out.String())
}

func TestConsole_WaitForEnter(t *testing.T) {
	cons, out := newTestConsole("\n")

	cons.WaitForEnter(context.Background())

	assert.Equal(t, "Game over. Press Enter to exit.\n", out.String())
}
