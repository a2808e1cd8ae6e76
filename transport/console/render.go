package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowSeparator = "   -------------\n"

// RenderBoard draws the grid with 1-indexed row and column labels.
func (that *Console) RenderBoard(board *entity.Board) string {
	var sb strings.Builder

	sb.WriteString("\n  Tic-Tac-Toe\n\n")
	sb.WriteString("     1   2   3\n")

	for r := range entity.Size {
		sb.WriteString(rowSeparator)
		sb.WriteString(fmt.Sprintf(" %d |", r+1))
		for c := range entity.Size {
			sb.WriteString(" " + that.symbols[board[r][c]] + " |")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(rowSeparator)
	sb.WriteString("\n")

	return sb.String()
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.clearScreen(that.out)
	fmt.Fprint(that.out, that.RenderBoard(board))
}

func (that *Console) ShowTurn(game *entity.Game) {
	symbol := that.symbols[game.Turn]

	switch {
	case game.Mode == entity.ModeTwoPlayers:
		fmt.Fprintf(that.out, "Turn: Player %s\n", symbol)
	case game.IsComputerTurn():
		fmt.Fprintln(that.out, "Computer is thinking...")
	default:
		fmt.Fprintf(that.out, "Your turn (%s).\n", symbol)
	}
}

func (that *Console) ShowResult(game *entity.Game) {
	switch game.Outcome() {
	case entity.WinA:
		fmt.Fprintf(that.out, "Player %s wins!\n", that.symbols[entity.MarkA])
	case entity.WinB:
		if game.Mode == entity.ModeVersusComputer {
			fmt.Fprintln(that.out, "Computer wins!")
			return
		}
		fmt.Fprintf(that.out, "Player %s wins!\n", that.symbols[entity.MarkB])
	case entity.Draw:
		fmt.Fprintln(that.out, "It's a draw!")
	}
}

// ShowPrimeVerdict prints the result line of the primality check.
func (that *Console) ShowPrimeVerdict(n int64, prime bool) {
	if prime {
		fmt.Fprintf(that.out, "%d IS A PRIME NUMBER\n", n)
		return
	}

	fmt.Fprintf(that.out, "%d IS NOT A PRIME NUMBER\n", n)
}
