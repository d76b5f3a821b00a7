package entity

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Cell = ""
)

// Mark identifies one of the two players. X moves as the first player, O as the second.
type Mark string

// Toggle returns the opposing mark.
func (that Mark) Toggle() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) String() string {
	return string(that)
}

// Cell is a single board square, either EmptyCell or holding exactly one Mark.
type Cell string

// Occupied returns a cell holding mark.
func Occupied(mark Mark) Cell {
	return Cell(mark)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Mark returns the mark in the cell and false when the cell is empty.
func (that Cell) Mark() (Mark, bool) {
	if that.IsEmpty() {
		return "", false
	}
	return Mark(that), true
}
