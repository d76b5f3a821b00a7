package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// HasWon reports whether mark fills an entire row, column or diagonal of board.
// Columns are checked as the rows of the board rotated by 90 degrees.
func HasWon(board *entity.Board, mark entity.Mark) bool {
	if board.Size() == 0 {
		return false
	}

	return hasFullRow(board, mark) ||
		hasFullRow(board.Rotate90(), mark) ||
		hasFullDiagonal(board, mark)
}

func hasFullRow(board *entity.Board, mark entity.Mark) bool {
	want := entity.Occupied(mark)

	for row := 0; row < board.Size(); row++ {
		full := true
		for col := 0; col < board.Size(); col++ {
			if board.Cell(row, col) != want {
				full = false
				break
			}
		}

		if full {
			return true
		}
	}

	return false
}

func hasFullDiagonal(board *entity.Board, mark entity.Mark) bool {
	want := entity.Occupied(mark)
	last := board.Size() - 1
	main, anti := true, true

	for i := 0; i <= last; i++ {
		if board.Cell(i, i) != want {
			main = false
		}
		if board.Cell(i, last-i) != want {
			anti = false
		}
	}

	return main || anti
}

// evaluate decides the status after mover has just placed a mark.
// A win takes precedence over a full board.
func evaluate(board *entity.Board, mover entity.Mark) entity.GameStatus {
	switch {
	case HasWon(board, mover):
		return entity.Won(mover)
	case board.IsFull():
		return entity.Draw()
	default:
		return entity.InProgress()
	}
}
