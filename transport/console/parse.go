package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// ParseMove reads "row col" with 1-indexed coordinates. Tokens past the second are ignored.
func ParseMove(line string) (entity.Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return entity.Move{}, fmt.Errorf("%w: expected two numbers, got %d", apperror.ErrMalformedInput, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q", apperror.ErrMalformedInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column %q", apperror.ErrMalformedInput, fields[1])
	}

	return entity.Move{Row: row - 1, Col: col - 1}, nil
}

// needsMoreTokens reports whether fields hold fewer than two tokens and all of
// them are integers, so the move may continue on the next line.
func needsMoreTokens(fields []string) bool {
	if len(fields) >= 2 {
		return false
	}

	for _, field := range fields {
		if _, err := strconv.Atoi(field); err != nil {
			return false
		}
	}

	return true
}

// ParseNumber reads the first whitespace-separated token as a base-10 integer.
func ParseNumber(line string) (int64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: expected a number", apperror.ErrMalformedInput)
	}

	n, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, fields[0])
	}

	return n, nil
}

// ParseMode accepts only the two menu entries.
func ParseMode(line string) (entity.Mode, error) {
	n, err := ParseNumber(line)
	if err != nil {
		return entity.ModeUnset, err
	}

	mode, err := entity.ParseMode(int(n))
	if err != nil {
		return entity.ModeUnset, fmt.Errorf("%w: %w", apperror.ErrMalformedInput, err)
	}

	return mode, nil
}
