package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Board is a square grid of cells addressed as (row, col) from the top left.
type Board struct {
	cells [][]Cell
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	if size < 0 {
		size = 0
	}

	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}

	return &Board{cells: cells}
}

// BoardFromRows builds a board from literal rows, copying them.
func BoardFromRows(rows [][]Cell) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", apperror.ErrInvalidBoard)
	}

	board := NewBoard(len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidBoard, i, len(row), len(rows))
		}
		copy(board.cells[i], row)
	}

	return board, nil
}

func (that *Board) Size() int {
	return len(that.cells)
}

// InBounds reports whether (row, col) addresses a cell of the board.
func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(that.cells) && col >= 0 && col < len(that.cells)
}

// Cell returns the cell at (row, col). It panics when the position is out of range.
func (that *Board) Cell(row, col int) Cell {
	return that.cells[row][col]
}

// IsCellEmpty panics when the position is out of range.
func (that *Board) IsCellEmpty(row, col int) bool {
	return that.cells[row][col].IsEmpty()
}

// Place writes mark into (row, col) without checking the previous content.
func (that *Board) Place(row, col int, mark Mark) {
	that.cells[row][col] = Occupied(mark)
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Row returns a copy of row i.
func (that *Board) Row(i int) []Cell {
	row := make([]Cell, len(that.cells[i]))
	copy(row, that.cells[i])
	return row
}

// Rows returns a copy of the whole grid.
func (that *Board) Rows() [][]Cell {
	rows := make([][]Cell, len(that.cells))
	for i := range that.cells {
		rows[i] = that.Row(i)
	}
	return rows
}

func (that *Board) Clone() *Board {
	return &Board{cells: that.Rows()}
}

// Rotate90 returns a new board rotated 90 degrees clockwise:
// the cell at (i, j) moves to (j, size-1-i).
func (that *Board) Rotate90() *Board {
	rotated := that.Clone()
	cells := rotated.cells
	n := len(cells)

	for top, bottom := 0, n-1; top < bottom; top, bottom = top+1, bottom-1 {
		cells[top], cells[bottom] = cells[bottom], cells[top]
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cells[i][j], cells[j][i] = cells[j][i], cells[i][j]
		}
	}

	return rotated
}

func (that *Board) Equal(other *Board) bool {
	if other == nil || len(that.cells) != len(other.cells) {
		return false
	}

	for i, row := range that.cells {
		for j, cell := range row {
			if other.cells[i][j] != cell {
				return false
			}
		}
	}

	return true
}
