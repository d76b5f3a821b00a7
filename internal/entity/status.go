package entity

import "fmt"

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateDraw       State = "draw"
)

// State is the phase of a game. StateWon and StateDraw are terminal.
type State string

// GameStatus is the outcome of a game so far. Winner is set only for StateWon.
type GameStatus struct {
	State  State `json:"state"`
	Winner Mark  `json:"winner,omitempty"`
}

func InProgress() GameStatus {
	return GameStatus{State: StateInProgress}
}

func Won(mark Mark) GameStatus {
	return GameStatus{State: StateWon, Winner: mark}
}

func Draw() GameStatus {
	return GameStatus{State: StateDraw}
}

func (that GameStatus) IsTerminal() bool {
	return that.State == StateWon || that.State == StateDraw
}

func (that GameStatus) IsInProgress() bool {
	return that.State == StateInProgress
}

func (that GameStatus) String() string {
	switch that.State {
	case StateWon:
		return fmt.Sprintf("%s won", that.Winner)
	case StateDraw:
		return "draw"
	default:
		return "in progress"
	}
}
