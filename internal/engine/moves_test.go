package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testGame builds a position from coordinate/piece pairs. Both kings must
// be included; check detection panics without them.
func testGame(t *testing.T, active Colour, pieces map[string]Piece) *Game {
	t.Helper()
	g := &Game{state: StateInProgress, active: active}
	for coord, p := range pieces {
		sq, err := ParseSquare(coord)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", coord, err)
		}
		g.board.put(sq, p)
	}
	return g
}

func moveCoords(moves []Square) []string {
	out := make([]string, 0, len(moves))
	for _, mv := range moves {
		out = append(out, mv.String())
	}
	sort.Strings(out)
	return out
}

func assertMoves(t *testing.T, g *Game, from string, want []string) {
	t.Helper()
	sq, err := ParseSquare(from)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", from, err)
	}
	got := moveCoords(g.PossibleMoves(sq))
	sort.Strings(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("moves from %s mismatch (-want +got):\n%s", from, diff)
	}
}

func TestKnightMovesUnblocked(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"d4": {Type: Knight, Colour: White},
		"a1": {Type: King, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	assertMoves(t, g, "d4", []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"})
}

func TestKnightJumpsOverPieces(t *testing.T) {
	// Surround the knight completely; the hops must survive.
	pieces := map[string]Piece{
		"d4": {Type: Knight, Colour: White},
		"a1": {Type: King, Colour: White},
		"h8": {Type: King, Colour: Black},
	}
	for _, coord := range []string{"c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"} {
		pieces[coord] = Piece{Type: Pawn, Colour: Black}
	}
	g := testGame(t, White, pieces)
	assertMoves(t, g, "d4", []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"})
}

func TestRookRaysStopAtPieces(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"d4": {Type: Rook, Colour: White},
		"d6": {Type: Pawn, Colour: White}, // own piece blocks, square excluded
		"g4": {Type: Pawn, Colour: Black}, // enemy piece ends the ray, square included
		"a1": {Type: King, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	assertMoves(t, g, "d4", []string{
		"d5",             // up, stopped before d6
		"d3", "d2", "d1", // down
		"c4", "b4", "a4", // left
		"e4", "f4", "g4", // right, capturing g4
	})
}

func TestBishopDiagonals(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"c1": {Type: Bishop, Colour: White},
		"e3": {Type: Pawn, Colour: Black},
		"a1": {Type: King, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	assertMoves(t, g, "c1", []string{"b2", "a3", "d2", "e3"})
}

func TestQueenCombinesRookAndBishop(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"a1": {Type: King, Colour: White},
		"h1": {Type: Queen, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	sq, _ := ParseSquare("h1")
	moves := g.PossibleMoves(sq)
	want := []string{
		"h2", "h3", "h4", "h5", "h6", "h7", "h8",
		"g1", "f1", "e1", "d1", "c1", "b1",
		"g2", "f3", "e4", "d5", "c6", "b7", "a8",
	}
	sort.Strings(want)
	if diff := cmp.Diff(want, moveCoords(moves)); diff != "" {
		t.Fatalf("queen moves mismatch (-want +got):\n%s", diff)
	}
}

func TestPawnForwardAndCapture(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"e2": {Type: Pawn, Colour: White},
		"d3": {Type: Pawn, Colour: Black},
		"a1": {Type: King, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	// Single step, double step from the starting row, and the capture.
	// f3 is empty, so the other diagonal is not a move.
	assertMoves(t, g, "e2", []string{"e3", "e4", "d3"})
}

func TestPawnBlockedStraightAhead(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"e2": {Type: Pawn, Colour: White},
		"e3": {Type: Pawn, Colour: Black}, // no capture straight ahead
		"a1": {Type: King, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	assertMoves(t, g, "e2", []string{})
}

func TestPawnDoubleStepNeedsClearPath(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"e2": {Type: Pawn, Colour: White},
		"e4": {Type: Pawn, Colour: Black}, // single step open, double step blocked
		"a1": {Type: King, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	assertMoves(t, g, "e2", []string{"e3"})
}

func TestPawnNoDoubleStepOffStartingRow(t *testing.T) {
	g := testGame(t, Black, map[string]Piece{
		"d5": {Type: Pawn, Colour: Black},
		"a1": {Type: King, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	assertMoves(t, g, "d5", []string{"d4"})
}

func TestBlackPawnMovesDownTheBoard(t *testing.T) {
	g := testGame(t, Black, map[string]Piece{
		"d7": {Type: Pawn, Colour: Black},
		"e6": {Type: Pawn, Colour: White},
		"a1": {Type: King, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	assertMoves(t, g, "d7", []string{"d6", "d5", "e6"})
}

func TestPinnedRookCannotLeaveTheFile(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"e1": {Type: King, Colour: White},
		"e2": {Type: Rook, Colour: White},
		"e8": {Type: Rook, Colour: Black},
		"h8": {Type: King, Colour: Black},
	})
	// Any sideways rook move opens the e file and exposes the king.
	assertMoves(t, g, "e2", []string{"e3", "e4", "e5", "e6", "e7", "e8"})
}

func TestKingMayNotStepIntoCheck(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"e1": {Type: King, Colour: White},
		"a2": {Type: Rook, Colour: Black}, // covers the whole second row
		"h8": {Type: King, Colour: Black},
	})
	assertMoves(t, g, "e1", []string{"d1", "f1"})
}

func TestMissingKingPanics(t *testing.T) {
	g := testGame(t, White, map[string]Piece{
		"a1": {Type: Rook, Colour: White},
		"h8": {Type: King, Colour: Black},
	})
	defer func() {
		if recover() == nil {
			t.Fatal("InCheck with no white king did not panic")
		}
	}()
	g.InCheck()
}

func TestTryMoveFromEmptySquarePanics(t *testing.T) {
	g := New()
	defer func() {
		if recover() == nil {
			t.Fatal("tryMove from an empty square did not panic")
		}
	}()
	g.tryMove(Square{Row: 4, Col: 4}, 1, 0, 0)
}
