package tictactoe

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg/random"
)

// Engine enforces turn order on a single board and decides the outcome after every move.
// An Engine is owned by one caller and is not safe for concurrent use.
type Engine struct {
	logger *slog.Logger
	rnd    random.Source

	board  *entity.Board
	turn   entity.Mark
	status entity.GameStatus
	moves  int
}

// NewGame creates an engine with an empty size x size board and a random starting mark.
func NewGame(logger *slog.Logger, size int, rnd random.Source) (*Engine, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	that := &Engine{
		logger: logger.With("component", "engine"),
		rnd:    rnd,
		board:  entity.NewBoard(size),
	}
	that.Reset()

	return that, nil
}

// ApplyMove places the current mark at (row, col) and advances the game.
// On error nothing changes and the current status is returned alongside the error.
func (that *Engine) ApplyMove(row, col int) (entity.GameStatus, error) {
	if err := that.validateMove(row, col); err != nil {
		return that.status, err
	}

	mover := that.turn
	that.board.Place(row, col, mover)
	that.moves++

	that.updateGameStatus(mover)

	that.logger.Debug("move applied",
		"mark", mover, "row", row, "col", col, "moves", that.moves, "status", that.status.String())

	return that.status, nil
}

// Reset starts over on an empty board of the same size with a new random starting mark.
func (that *Engine) Reset() {
	that.board = entity.NewBoard(that.board.Size())
	that.turn = random.Mark(that.rnd)
	that.status = entity.InProgress()
	that.moves = 0

	that.logger.Debug("game reset", "size", that.board.Size(), "turn", that.turn)
}

// Board returns a copy of the current board.
func (that *Engine) Board() *entity.Board {
	return that.board.Clone()
}

// Turn returns the mark that moves next. After the game ends it is the mark that moved last.
func (that *Engine) Turn() entity.Mark {
	return that.turn
}

func (that *Engine) Status() entity.GameStatus {
	return that.status
}

func (that *Engine) Size() int {
	return that.board.Size()
}

func (that *Engine) Moves() int {
	return that.moves
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(row, col int) error {
	if that.status.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if !that.board.InBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d on a %dx%d board",
			apperror.ErrOutOfBounds, row, col, that.board.Size(), that.board.Size())
	}

	if !that.board.IsCellEmpty(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *Engine) updateGameStatus(mover entity.Mark) {
	that.status = evaluate(that.board, mover)

	if that.status.IsInProgress() {
		that.turn = mover.Toggle()
		return
	}

	that.logger.Debug("game finished", "status", that.status.String(), "moves", that.moves)
}

// Snapshot captures the engine state under the given session id.
func (that *Engine) Snapshot(id string) *entity.Snapshot {
	return &entity.Snapshot{
		ID:        id,
		Size:      that.board.Size(),
		Board:     that.board.Rows(),
		Turn:      that.turn,
		Status:    that.status,
		Moves:     that.moves,
		UpdatedAt: time.Now().UTC(),
	}
}

// Restore rebuilds an engine from a snapshot. It rejects malformed boards, a status the
// board does not imply, and mark counts or a turn that alternating play cannot produce.
func Restore(logger *slog.Logger, snap *entity.Snapshot, rnd random.Source) (*Engine, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: nil snapshot", apperror.ErrInvalidSnapshot)
	}

	if snap.Size < 1 || len(snap.Board) != snap.Size {
		return nil, fmt.Errorf("%w: size %d with %d rows", apperror.ErrInvalidSnapshot, snap.Size, len(snap.Board))
	}

	board, err := entity.BoardFromRows(snap.Board)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidSnapshot, err)
	}

	xCount, oCount, err := countMarks(board)
	if err != nil {
		return nil, err
	}

	if !snap.Turn.IsValid() {
		return nil, fmt.Errorf("%w: turn %q", apperror.ErrInvalidSnapshot, snap.Turn)
	}

	if err = confirmStatus(board, snap.Status); err != nil {
		return nil, err
	}

	if err = confirmTurn(xCount, oCount, snap.Turn, snap.Status); err != nil {
		return nil, err
	}

	return &Engine{
		logger: logger.With("component", "engine", "game_id", snap.ID),
		rnd:    rnd,
		board:  board,
		turn:   snap.Turn,
		status: snap.Status,
		moves:  xCount + oCount,
	}, nil
}

// countMarks - counts the X and O cells, rejecting unknown marks.
func countMarks(board *entity.Board) (int, int, error) {
	xCount, oCount := 0, 0

	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			cell := board.Cell(row, col)
			if cell.IsEmpty() {
				continue
			}

			switch mark, _ := cell.Mark(); mark {
			case entity.PlayerX:
				xCount++
			case entity.PlayerO:
				oCount++
			default:
				return 0, 0, fmt.Errorf("%w: unknown mark %q at row %d col %d", apperror.ErrInvalidSnapshot, mark, row, col)
			}
		}
	}

	return xCount, oCount, nil
}

// confirmTurn - checks that the mark counts and the turn fit alternating play from either starting mark.
// The turn of a finished game is the mark that made the last move.
func confirmTurn(xCount, oCount int, turn entity.Mark, status entity.GameStatus) error {
	diff := xCount - oCount
	if diff < -1 || diff > 1 {
		return fmt.Errorf("%w: %d X against %d O", apperror.ErrInvalidSnapshot, xCount, oCount)
	}

	if status.State == entity.StateWon && turn != status.Winner {
		return fmt.Errorf("%w: %q won but %q moved last", apperror.ErrInvalidSnapshot, status.Winner, turn)
	}

	if diff == 0 {
		return nil
	}

	expected := entity.PlayerX
	if diff < 0 {
		expected = entity.PlayerO
	}
	if status.IsInProgress() {
		expected = expected.Toggle()
	}

	if turn != expected {
		return fmt.Errorf("%w: turn %q with %d X and %d O", apperror.ErrInvalidSnapshot, turn, xCount, oCount)
	}

	return nil
}

// confirmStatus - checks that status is the one the board implies.
func confirmStatus(board *entity.Board, status entity.GameStatus) error {
	xWon, oWon := HasWon(board, entity.PlayerX), HasWon(board, entity.PlayerO)

	switch status.State {
	case entity.StateInProgress:
		if xWon || oWon || board.IsFull() {
			return fmt.Errorf("%w: in progress game is already decided", apperror.ErrInvalidSnapshot)
		}
	case entity.StateWon:
		if !status.Winner.IsValid() || !HasWon(board, status.Winner) {
			return fmt.Errorf("%w: %q has no full line", apperror.ErrInvalidSnapshot, status.Winner)
		}
	case entity.StateDraw:
		if xWon || oWon || !board.IsFull() {
			return fmt.Errorf("%w: draw on an undecided board", apperror.ErrInvalidSnapshot)
		}
	default:
		return fmt.Errorf("%w: unknown state %q", apperror.ErrInvalidSnapshot, status.State)
	}

	return nil
}
