package engine

// maxCheckDepth bounds the mutual recursion between move generation and
// check detection. Depth 2 covers the mover's move plus the opponent's
// direct reply, which is exactly enough to answer "can my king be captured
// next move"; beyond that the self-check test is skipped.
const maxCheckDepth = 2

var (
	allDirections = [8][2]int{
		{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
	orthogonals = [4][2]int{{1, 0}, {0, 1}, {0, -1}, {-1, 0}}
	diagonals   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJumps = [8][2]int{
		{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {-2, 1}, {-2, -1},
	}
)

// possibleMoves lists every legal destination for the piece on from. An
// empty origin yields an empty list. depth tracks how many move-generation/
// check-detection hops led here; callers outside this file pass 0.
func (g *Game) possibleMoves(from Square, depth int) []Square {
	depth++

	piece := g.board.At(from)
	if piece.IsEmpty() {
		return nil
	}

	var moves []Square
	switch piece.Type {
	case King:
		for _, off := range allDirections {
			if legal, _ := g.tryMove(from, off[0], off[1], depth); legal {
				sq, _ := from.offset(off[0], off[1])
				moves = append(moves, sq)
			}
		}
	case Queen:
		for _, dir := range allDirections {
			moves = g.scanRay(from, dir[0], dir[1], depth, moves)
		}
	case Rook:
		for _, dir := range orthogonals {
			moves = g.scanRay(from, dir[0], dir[1], depth, moves)
		}
	case Bishop:
		for _, dir := range diagonals {
			moves = g.scanRay(from, dir[0], dir[1], depth, moves)
		}
	case Knight:
		// Knight hops are never blocked by intervening pieces.
		for _, off := range knightJumps {
			if legal, _ := g.tryMove(from, off[0], off[1], depth); legal {
				sq, _ := from.offset(off[0], off[1])
				moves = append(moves, sq)
			}
		}
	case Pawn:
		moves = g.pawnMoves(from, piece.Colour, depth, moves)
	}
	return moves
}

// scanRay walks one direction square by square, collecting legal
// destinations until the ray is blocked or leaves the board.
func (g *Game) scanRay(from Square, dRow, dCol, depth int, moves []Square) []Square {
	for step := 1; step < 8; step++ {
		legal, open := g.tryMove(from, dRow*step, dCol*step, depth)
		if legal {
			sq, _ := from.offset(dRow*step, dCol*step)
			moves = append(moves, sq)
		}
		if !open {
			break
		}
	}
	return moves
}

// pawnMoves hand-codes the asymmetric pawn rules. Forward steps require an
// empty destination (tryMove reporting the ray still open); diagonal steps
// are captures only, so they require the opposite. The double step is
// limited to the pawn's starting row with the single step unobstructed.
// There is no en-passant and no capture straight ahead.
func (g *Game) pawnMoves(from Square, colour Colour, depth int, moves []Square) []Square {
	dir := 1
	startRow := 1
	if colour == Black {
		dir = -1
		startRow = 6
	}
	onStartRow := from.Row == startRow

	for _, step := range [2]int{1, 2} {
		legal, open := g.tryMove(from, step*dir, 0, depth)
		if legal && open {
			sq, _ := from.offset(step*dir, 0)
			moves = append(moves, sq)
		}
		if !onStartRow || !open {
			break
		}
	}

	for _, dCol := range [2]int{1, -1} {
		legal, open := g.tryMove(from, dir, dCol, depth)
		if legal && !open {
			sq, _ := from.offset(dir, dCol)
			moves = append(moves, sq)
		}
	}
	return moves
}

// tryMove probes a single candidate destination for the piece on from.
// It returns whether the move itself is legal and whether the caller may
// keep scanning further along the same ray (false once any piece occupies
// the destination). Legality is decided on a full copy of the position so
// the live game is never mutated; once depth reaches maxCheckDepth the
// self-check test is skipped and the move is accepted as is.
func (g *Game) tryMove(from Square, dRow, dCol, depth int) (legal, open bool) {
	mover := g.board.At(from)
	if mover.IsEmpty() {
		panic("engine: tryMove called with an empty origin square")
	}

	to, ok := from.offset(dRow, dCol)
	if !ok {
		return false, false
	}

	target := g.board.At(to)
	if !target.IsEmpty() && target.Colour == mover.Colour {
		return false, false
	}

	sim := *g
	sim.board.put(to, mover)
	sim.board.put(from, Piece{})
	sim.active = sim.active.Opposite()

	legal = true
	if depth < maxCheckDepth {
		legal = !sim.inCheck(mover.Colour, depth)
	}
	return legal, target.IsEmpty()
}

// inCheck reports whether colour's king is attacked on the current board,
// by asking every enemy piece whether the king's square is among its
// moves. depth is passed through to keep the recursion bounded.
func (g *Game) inCheck(colour Colour, depth int) bool {
	kingSq := g.kingSquare(colour)

	for idx, piece := range g.board {
		if piece.IsEmpty() || piece.Colour == colour {
			continue
		}
		sq, _ := SquareFromIndex(idx)
		for _, mv := range g.possibleMoves(sq, depth) {
			if mv == kingSq {
				return true
			}
		}
	}
	return false
}

// hasLegalMove reports whether colour can make at least one legal move.
func (g *Game) hasLegalMove(colour Colour) bool {
	for idx, piece := range g.board {
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		sq, _ := SquareFromIndex(idx)
		if len(g.possibleMoves(sq, 0)) > 0 {
			return true
		}
	}
	return false
}

// kingSquare locates colour's king. Exactly one king per colour is a
// board invariant; a missing king means the position is corrupt and there
// is no recovery path.
func (g *Game) kingSquare(colour Colour) Square {
	for idx, piece := range g.board {
		if piece.Type == King && piece.Colour == colour {
			sq, _ := SquareFromIndex(idx)
			return sq
		}
	}
	panic("engine: no " + string(colour) + " king on the board")
}
