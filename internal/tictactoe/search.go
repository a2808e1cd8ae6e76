package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// WinScore is the utility of a completed line before depth adjustment.
const WinScore = 10

// Evaluate returns +WinScore if MarkB completed a line, -WinScore if MarkA did, 0 otherwise.
func Evaluate(board *entity.Board) int {
	switch board.Winner() {
	case entity.MarkB:
		return WinScore
	case entity.MarkA:
		return -WinScore
	default:
		return 0
	}
}

// Minimax scores board with MarkB maximizing and MarkA minimizing.
// Wins closer to the root score higher, losses further away score higher.
// Every placed mark is retracted before returning.
func Minimax(board *entity.Board, depth int, maximizing bool) int {
	score := Evaluate(board)

	if score == WinScore {
		return score - depth
	}
	if score == -WinScore {
		return score + depth
	}
	if !board.HasMovesLeft() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, move := range board.EmptyCells() {
			board.Place(move, entity.MarkB)
			best = max(best, Minimax(board, depth+1, false))
			board.Clear(move)
		}
		return best
	}

	best := math.MaxInt
	for _, move := range board.EmptyCells() {
		board.Place(move, entity.MarkA)
		best = min(best, Minimax(board, depth+1, true))
		board.Clear(move)
	}
	return best
}

// BestMove picks the MarkB move with the highest minimax score. Ties go to
// the first cell in row-major order. The board is restored before returning.
func BestMove(board *entity.Board) (entity.Move, int, error) {
	bestScore := math.MinInt
	bestMove := entity.Move{Row: -1, Col: -1}

	for _, move := range board.EmptyCells() {
		board.Place(move, entity.MarkB)
		score := Minimax(board, 0, false)
		board.Clear(move)

		if score > bestScore {
			bestMove = move
			bestScore = score
		}
	}

	if !bestMove.InBounds() {
		return bestMove, 0, apperror.ErrNoMove
	}

	return bestMove, bestScore, nil
}

// Searcher exposes BestMove behind a value so callers can substitute it.
type Searcher struct{}

func NewSearcher() *Searcher {
	return &Searcher{}
}

func (that *Searcher) BestMove(board *entity.Board) (entity.Move, int, error) {
	return BestMove(board)
}
