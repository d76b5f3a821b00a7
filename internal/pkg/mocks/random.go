package mocks

import "github.com/rocketscienceinc/tictactoe-engine/internal/pkg/random"

// MockRandom returns queued results from Intn, then 0 once the queue is drained.
type MockRandom struct {
	IntnResults []int
	intnIndex   int
}

var _ random.Source = (*MockRandom)(nil)

func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntnResults: values}
}

func (that *MockRandom) Intn(int) int {
	if that.intnIndex >= len(that.IntnResults) {
		return 0
	}

	result := that.IntnResults[that.intnIndex]
	that.intnIndex++

	return result
}

// QueueIntn adds values to the Intn result queue.
func (that *MockRandom) QueueIntn(values ...int) {
	that.IntnResults = append(that.IntnResults, values...)
}
