package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark_Toggle(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Toggle())
	assert.Equal(t, PlayerX, PlayerO.Toggle())
	assert.Equal(t, PlayerX, PlayerX.Toggle().Toggle())
}

func TestMark_IsValid(t *testing.T) {
	assert.True(t, PlayerX.IsValid())
	assert.True(t, PlayerO.IsValid())
	assert.False(t, Mark("").IsValid())
	assert.False(t, Mark("Z").IsValid())
}

func TestCell_Mark(t *testing.T) {
	_, ok := EmptyCell.Mark()
	assert.False(t, ok)
	assert.True(t, EmptyCell.IsEmpty())

	mark, ok := Occupied(PlayerO).Mark()
	assert.True(t, ok)
	assert.Equal(t, PlayerO, mark)
}

func TestGameStatus(t *testing.T) {
	assert.False(t, InProgress().IsTerminal())
	assert.True(t, Won(PlayerX).IsTerminal())
	assert.True(t, Draw().IsTerminal())

	assert.Equal(t, "X won", Won(PlayerX).String())
	assert.Equal(t, "draw", Draw().String())
	assert.Equal(t, "in progress", InProgress().String())
}
