package entity

import "time"

// Snapshot is the stored form of a single game's current state.
type Snapshot struct {
	ID        string     `json:"id"`
	Size      int        `json:"size"`
	Board     [][]Cell   `json:"board"`
	Turn      Mark       `json:"turn"`
	Status    GameStatus `json:"status"`
	Moves     int        `json:"moves"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (that *Snapshot) IsFinished() bool {
	return that.Status.IsTerminal()
}
