package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

var ErrBadInput = errors.New(`expected "ROW COL", e.g. "2 3"`)

// ParseCell reads a 1-based "ROW COL" pair, separated by spaces or a comma,
// and returns 0-based board coordinates. Range checks are left to the engine.
func ParseCell(input string) (int, int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, ErrBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", ErrBadInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", ErrBadInput, fields[1])
	}

	return row - 1, col - 1, nil
}

// checkBoardSize - keeps --size within the range config accepts for board-size.
func checkBoardSize(size int) error {
	if size < config.MinBoardSize || size > config.MaxBoardSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", apperror.ErrInvalidBoardSize, size, config.MinBoardSize, config.MaxBoardSize)
	}

	return nil
}
