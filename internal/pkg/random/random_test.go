package random

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
)

type fixedSource int

func (that fixedSource) Intn(int) int { return int(that) }

func TestMark(t *testing.T) {
	assert.Equal(t, entity.PlayerX, Mark(fixedSource(0)))
	assert.Equal(t, entity.PlayerO, Mark(fixedSource(1)))
}

func TestNewSeeded(t *testing.T) {
	// Given: two sources with the same seed
	first, second := NewSeeded(42), NewSeeded(42)

	// Then: both produce the same marks
	for i := 0; i < 32; i++ {
		assert.Equal(t, Mark(first), Mark(second))
	}
}

func TestSourcesStayInRange(t *testing.T) {
	for _, src := range []Source{NewCrypto(), NewSeeded(7)} {
		seen := map[entity.Mark]bool{}

		for i := 0; i < 200; i++ {
			n := src.Intn(2)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 2)

			seen[Mark(src)] = true
		}

		assert.Len(t, seen, 2)
		assert.Equal(t, 0, src.Intn(0))
	}
}
