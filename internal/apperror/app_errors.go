package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrOutOfBounds = errors.New("cell is out of bounds")

	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrIllegalMove)

	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidBoard     = errors.New("board must be square")
	ErrInvalidSnapshot  = errors.New("invalid game snapshot")
	ErrGameNotFound     = errors.New("game not found")
)
