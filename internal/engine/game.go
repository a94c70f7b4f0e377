package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Recoverable, user-facing failures. The game is left untouched whenever
// one of these is returned.
var (
	ErrGameNotPlayable      = errors.New("the game is not in a state where a move can be made")
	ErrEmptyOriginSquare    = errors.New("there is no piece on the square you are trying to move from")
	ErrWrongColour          = errors.New("it is not this colour's turn")
	ErrIllegalMove          = errors.New("illegal move: the piece cannot move this way, or the move puts your king in check")
	ErrNotAwaitingPromotion = errors.New("the game is not currently waiting on a promotion")
	ErrPromoteToKing        = errors.New("a pawn cannot be promoted to a king")
	ErrPromoteToPawn        = errors.New("a pawn cannot be promoted to a pawn")
	ErrInvalidPromotion     = errors.New("invalid promotion piece")
)

// Game is one chess session: the board, the side to move, the derived
// game state and the square last moved to (used to locate a pawn awaiting
// promotion). Game is the only mutable entity; every what-if simulation
// works on value copies.
type Game struct {
	state       GameState
	active      Colour
	board       Board
	lastMovedTo Square
}

// New starts a game from the standard position with White to move.
func New() *Game {
	return &Game{
		state:  StateInProgress,
		active: White,
		board:  StartingBoard(),
	}
}

// MakeMove moves the piece on the from square to the to square, both given
// as two-character coordinates such as "e2". The move is accepted only when
// the game is playable, the origin holds a piece of the side to move and
// the destination is among that piece's legal moves. On success the side to
// move flips and the new game state is returned.
func (g *Game) MakeMove(from, to string) (GameState, error) {
	if g.state != StateInProgress && g.state != StateCheck {
		return g.state, fmt.Errorf("%w: currently the state is %s", ErrGameNotPlayable, g.state)
	}

	fromSq, err := ParseSquare(from)
	if err != nil {
		return g.state, fmt.Errorf("origin square: %w", err)
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return g.state, fmt.Errorf("destination square: %w", err)
	}

	piece := g.board.At(fromSq)
	if piece.IsEmpty() {
		return g.state, ErrEmptyOriginSquare
	}
	if piece.Colour != g.active {
		return g.state, fmt.Errorf("%w: %s to move", ErrWrongColour, g.active)
	}

	destinationOK := false
	for _, mv := range g.possibleMoves(fromSq, 0) {
		if mv == toSq {
			destinationOK = true
			break
		}
	}
	if !destinationOK {
		return g.state, ErrIllegalMove
	}

	g.board.put(toSq, piece)
	g.board.put(fromSq, Piece{})
	g.lastMovedTo = toSq
	// The colour flips before classification so the new state is always
	// evaluated for the side about to move.
	g.active = g.active.Opposite()
	g.updateGameState()

	return g.state, nil
}

// SetPromotion resolves a pending pawn promotion. The piece name is trimmed
// and case-folded; queen, rook, bishop and knight are accepted, king and
// pawn are rejected with their own errors. On success the pawn on the last
// moved square is replaced, keeping its colour, the side to move flips and
// the game state is re-derived.
func (g *Game) SetPromotion(pieceName string) (GameState, error) {
	if g.state != StateWaitingOnPromotionChoice {
		return g.state, fmt.Errorf("%w: currently the state is %s", ErrNotAwaitingPromotion, g.state)
	}

	var pieceType PieceType
	switch strings.ToLower(strings.TrimSpace(pieceName)) {
	case "queen":
		pieceType = Queen
	case "rook":
		pieceType = Rook
	case "bishop":
		pieceType = Bishop
	case "knight":
		pieceType = Knight
	case "king":
		return g.state, ErrPromoteToKing
	case "pawn":
		return g.state, ErrPromoteToPawn
	default:
		return g.state, fmt.Errorf("%w: %q", ErrInvalidPromotion, pieceName)
	}

	promoted := g.board.At(g.lastMovedTo)
	g.board.put(g.lastMovedTo, Piece{Type: pieceType, Colour: promoted.Colour})

	g.active = g.active.Opposite()
	g.updateGameState()

	return g.state, nil
}

// Resign ends a playable game immediately; the state becomes GameOver.
func (g *Game) Resign() (GameState, error) {
	if g.state != StateInProgress && g.state != StateCheck {
		return g.state, fmt.Errorf("%w: currently the state is %s", ErrGameNotPlayable, g.state)
	}
	g.state = StateGameOver
	return g.state, nil
}

// PossibleMoves lists the legal destinations for whatever occupies sq,
// empty when the square is unoccupied. It does not consider whose turn it
// is; MakeMove enforces turn ownership.
func (g *Game) PossibleMoves(sq Square) []Square {
	return g.possibleMoves(sq, 0)
}

// InCheck reports whether the side to move is currently in check.
func (g *Game) InCheck() bool { return g.inCheck(g.active, 0) }

// State returns the current game state.
func (g *Game) State() GameState { return g.state }

// ActiveColour returns the side to move.
func (g *Game) ActiveColour() Colour { return g.active }

// Board returns a copy of the current position.
func (g *Game) Board() Board { return g.board }

// String renders the current position as the fixed-width text grid.
func (g *Game) String() string { return g.board.Render() }

// updateGameState re-derives the game state for the side to move. It must
// run after the colour flip. Precedence: a pawn on its farthest rank forces
// WaitingOnPromotionChoice before anything else; then check plus no legal
// move is checkmate, no check and no legal move is stalemate, both
// collapsing into the single GameOver state.
func (g *Game) updateGameState() {
	if g.state != StateGameOver {
		last := g.board.At(g.lastMovedTo)
		if last.Type == Pawn {
			if (last.Colour == White && g.lastMovedTo.Row == 7) ||
				(last.Colour == Black && g.lastMovedTo.Row == 0) {
				g.state = StateWaitingOnPromotionChoice
				return
			}
		}
	}

	if g.inCheck(g.active, 0) {
		if g.hasLegalMove(g.active) {
			g.state = StateCheck
		} else {
			g.state = StateGameOver
		}
	} else {
		if g.hasLegalMove(g.active) {
			g.state = StateInProgress
		} else {
			g.state = StateGameOver
		}
	}
}
