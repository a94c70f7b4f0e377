// Package gamedto carries the data shapes exchanged between the game
// service and its consumers (CLI, tests).
package gamedto

// SessionState is a point-in-time view of one game session.
type SessionState struct {
	SessionUUID string   `json:"session_uuid"`
	State       string   `json:"state"`
	Turn        string   `json:"turn"`
	Board       string   `json:"board"`
	Moves       []string `json:"moves,omitempty"`
	MoveCount   int      `json:"move_count"`
}

// MoveSummary is the result of applying a move or a promotion.
type MoveSummary struct {
	State    *SessionState `json:"state"`
	Finished bool          `json:"finished"`
	Method   string        `json:"method,omitempty"`
}
