// Package engine implements the chess rules core: board representation,
// per-piece movement rules, check detection and game-state classification.
//
// The rule set is deliberately incomplete: castling and en-passant are not
// implemented. Callers that need parity with full chess rules must treat
// this as a known gap, not a defect.
package engine

// Colour identifies a chess side.
type Colour string

const (
	White Colour = "white"
	Black Colour = "black"
)

// Opposite returns the other side.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType is the closed set of piece kinds.
type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Pawn   PieceType = "pawn"
)

// Piece is a (type, colour) value. The zero Piece marks an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// IsEmpty reports whether p marks an unoccupied square.
func (p Piece) IsEmpty() bool { return p.Type == "" }

// GameState is the whole-game status derived after every accepted move.
type GameState string

const (
	// StateInProgress is the playable default state.
	StateInProgress GameState = "IN_PROGRESS"
	// StateCheck means the side to move must resolve a check.
	StateCheck GameState = "CHECK"
	// StateWaitingOnPromotionChoice blocks all operations except SetPromotion.
	StateWaitingOnPromotionChoice GameState = "WAITING_ON_PROMOTION_CHOICE"
	// StateGameOver is absorbing; it covers checkmate, stalemate and resignation.
	StateGameOver GameState = "GAME_OVER"
)
