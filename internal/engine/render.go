package engine

import "strings"

const renderBorder = "|:------------------------------:|"

var pieceCodes = map[PieceType]string{
	King:   "K ",
	Queen:  "Q ",
	Bishop: "B ",
	Knight: "Kn",
	Rook:   "R ",
	Pawn:   "P ",
}

// Render produces the fixed-width text grid for the board: eight rows top
// to bottom as stored (row 0 first), four characters per cell, bordered by
// rule lines. The format is stable; downstream tooling matches it byte for
// byte.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString(renderBorder)
	sb.WriteString("\n")

	for i, piece := range b {
		if i%8 == 0 {
			sb.WriteString("|")
		}
		if piece.IsEmpty() {
			sb.WriteString(" *  ")
		} else {
			sb.WriteString(" ")
			if piece.Colour == White {
				sb.WriteString("w")
			} else {
				sb.WriteString("b")
			}
			sb.WriteString(pieceCodes[piece.Type])
		}
		if i%8 == 7 {
			sb.WriteString("|\n")
		}
	}

	sb.WriteString(renderBorder)
	return sb.String()
}
