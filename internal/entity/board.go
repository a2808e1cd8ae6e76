package entity

// Size is the side length of the board.
const Size = 3

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	// MarkA always moves first.
	MarkA
	// MarkB is the side the search maximizes for.
	MarkB
)

func (m Mark) Opponent() Mark {
	switch m {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return Empty
	}
}

func (m Mark) String() string {
	switch m {
	case MarkA:
		return "A"
	case MarkB:
		return "B"
	default:
		return "empty"
	}
}

// Move addresses a cell by 0-indexed row and column.
type Move struct {
	Row int
	Col int
}

func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// WinLines are the rows, columns and diagonals, in the order they are checked.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid. It is a value type: assigning it copies every cell.
type Board [Size][Size]Mark

func (that *Board) At(move Move) Mark {
	return that[move.Row][move.Col]
}

// Place writes mark into the cell without any legality check.
func (that *Board) Place(move Move, mark Mark) {
	that[move.Row][move.Col] = mark
}

func (that *Board) Clear(move Move) {
	that[move.Row][move.Col] = Empty
}

func (that *Board) IsEmpty(move Move) bool {
	return that.At(move) == Empty
}

func (that *Board) HasMovesLeft() bool {
	for r := range Size {
		for c := range Size {
			if that[r][c] == Empty {
				return true
			}
		}
	}

	return false
}

// EmptyCells lists the free cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			if that[r][c] == Empty {
				cells = append(cells, Move{Row: r, Col: c})
			}
		}
	}

	return cells
}

// MarksPlaced counts the non-empty cells.
func (that *Board) MarksPlaced() int {
	return Size*Size - len(that.EmptyCells())
}

// Winner returns the mark of the first completed line, or Empty.
func (that *Board) Winner() Mark {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

func (that *Board) Outcome() Outcome {
	switch that.Winner() {
	case MarkA:
		return WinA
	case MarkB:
		return WinB
	}

	// the game will continue until all the squares are full
	if that.HasMovesLeft() {
		return InProgress
	}

	return Draw
}

// Outcome is derived from the board contents and never stored.
type Outcome uint8

const (
	InProgress Outcome = iota
	WinA
	WinB
	Draw
)

func (o Outcome) IsTerminal() bool {
	return o != InProgress
}

func (o Outcome) String() string {
	switch o {
	case WinA:
		return "win_a"
	case WinB:
		return "win_b"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}
