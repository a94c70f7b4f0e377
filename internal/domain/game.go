package domain

import "time"

// GameRecord is the archived summary of a finished game.
type GameRecord struct {
	ID          int64
	SessionUUID string
	Outcome     string
	Method      string
	Moves       []string
	MoveCount   int
	StartedAt   time.Time
	EndedAt     time.Time
	Duration    time.Duration
}
