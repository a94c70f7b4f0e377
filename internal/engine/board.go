package engine

// Board is a fixed 64-cell grid of optional pieces, indexed row-major from
// White's back rank. It is a plain value: assignment copies the whole
// position, which is what every what-if simulation relies on.
type Board [64]Piece

// At returns the piece occupying sq, or the zero Piece when empty.
func (b *Board) At(sq Square) Piece { return b[sq.Index()] }

// put places p on sq, displacing whatever was there.
func (b *Board) put(sq Square, p Piece) { b[sq.Index()] = p }

// StartingBoard lays out the standard initial position. The back ranks run
// R Kn B K Q B Kn R from column 0; Black mirrors White across the board.
func StartingBoard() Board {
	var b Board

	backRank := []PieceType{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}
	for col, pt := range backRank {
		b[col] = Piece{Type: pt, Colour: White}
		b[7*8+col] = Piece{Type: pt, Colour: Black}
	}
	for col := 0; col < 8; col++ {
		b[1*8+col] = Piece{Type: Pawn, Colour: White}
		b[6*8+col] = Piece{Type: Pawn, Colour: Black}
	}
	return b
}
