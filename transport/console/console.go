package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// clearSequence moves the cursor home and erases the screen on ANSI terminals.
const clearSequence = "\033[H\033[2J"

type Options struct {
	ClearScreen bool
	SymbolA     string
	SymbolB     string
}

// Console is the text I/O shell of both programs.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	symbols     map[entity.Mark]string
	clearScreen func(w io.Writer)
}

func New(in io.Reader, out io.Writer, opts Options) *Console {
	symbolA, symbolB := opts.SymbolA, opts.SymbolB
	if symbolA == "" {
		symbolA = "X"
	}
	if symbolB == "" {
		symbolB = "O"
	}

	clearScreen := func(io.Writer) {}
	if opts.ClearScreen {
		clearScreen = func(w io.Writer) { fmt.Fprint(w, clearSequence) }
	}

	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		symbols: map[entity.Mark]string{
			entity.Empty: " ",
			entity.MarkA: symbolA,
			entity.MarkB: symbolB,
		},
		clearScreen: clearScreen,
	}
}

// ReadMove prompts the side to move and reads row and column as a token stream:
// they may share a line or span several. A bad token discards the rest of its line.
func (that *Console) ReadMove(ctx context.Context, mark entity.Mark) (entity.Move, error) {
	fmt.Fprintf(that.out, "Player %s move (row col): ", that.symbols[mark])

	var fields []string
	for {
		line, err := that.readLine(ctx)
		if err != nil {
			return entity.Move{}, err
		}

		fields = append(fields, strings.Fields(line)...)
		if !needsMoreTokens(fields) {
			break
		}
	}

	return ParseMove(strings.Join(fields, " "))
}

// ReadMode shows the menu and asks until a valid mode is entered.
func (that *Console) ReadMode(ctx context.Context) (entity.Mode, error) {
	fmt.Fprintln(that.out, "Tic-Tac-Toe")
	fmt.Fprintln(that.out, "1 - Single player (you vs computer)")
	fmt.Fprintln(that.out, "2 - Two player")
	fmt.Fprint(that.out, "Choose mode (1 or 2): ")

	for {
		line, err := that.readLine(ctx)
		if err != nil {
			return entity.ModeUnset, err
		}

		mode, err := ParseMode(line)
		if err == nil {
			return mode, nil
		}

		fmt.Fprint(that.out, "Please enter 1 or 2: ")
	}
}

// ReadNumber asks for an integer until one is entered.
func (that *Console) ReadNumber(ctx context.Context, prompt string) (int64, error) {
	for {
		fmt.Fprint(that.out, prompt)

		line, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		n, err := ParseNumber(line)
		if err == nil {
			return n, nil
		}

		fmt.Fprintln(that.out, "Invalid input. Enter a whole number.")
	}
}

// WaitForEnter blocks until a line is read. End of input counts as acknowledged.
func (that *Console) WaitForEnter(ctx context.Context) {
	fmt.Fprint(that.out, "Game over. Press Enter to exit.")
	_, _ = that.readLine(ctx)
	fmt.Fprintln(that.out)
}

// readLine returns one line without its terminator. A final line without a
// newline is returned as is; io.EOF is only reported when nothing was read.
func (that *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := that.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ShowError prints the user-facing message for an input or move error.
func (that *Console) ShowError(err error) {
	switch {
	case errors.Is(err, apperror.ErrOutOfBounds):
		fmt.Fprintf(that.out, "Rows and columns must be between 1 and %d.\n", entity.Size)
	case errors.Is(err, apperror.ErrCellOccupied):
		fmt.Fprintln(that.out, "That cell is already taken. Choose another.")
	case errors.Is(err, apperror.ErrMalformedInput):
		fmt.Fprintln(that.out, "Invalid input. Enter two numbers like: 1 3")
	default:
		fmt.Fprintf(that.out, "Error: %v\n", err)
	}
}
