package engine

import (
	"fmt"
	"strings"
)

// Square addresses one of the 64 board cells. Row 0 is White's own back
// rank; row and col are always within [0,7] for a constructed Square.
type Square struct {
	Row int
	Col int
}

// NewSquare builds a Square from row/col indices, rejecting out-of-range input.
func NewSquare(row, col int) (Square, error) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return Square{}, fmt.Errorf("invalid row %d or col %d, both must be between 0 and 7", row, col)
	}
	return Square{Row: row, Col: col}, nil
}

// SquareFromIndex builds a Square from a flat board index 0-63.
func SquareFromIndex(idx int) (Square, error) {
	if idx < 0 || idx > 63 {
		return Square{}, fmt.Errorf("invalid index %d, must be between 0 and 63", idx)
	}
	return Square{Row: idx / 8, Col: idx % 8}, nil
}

// ParseSquare reads a two-character coordinate such as "e2": a file letter
// a-h followed by a rank digit 1-8. Input is trimmed and case-insensitive.
func ParseSquare(text string) (Square, error) {
	cleaned := strings.TrimSpace(strings.ToLower(text))
	runes := []rune(cleaned)
	if len(runes) != 2 {
		return Square{}, fmt.Errorf("input %q is of invalid length", text)
	}

	file := runes[0]
	if file < 'a' || file > 'h' {
		return Square{}, fmt.Errorf("first character %q invalid, should be a letter between a and h", string(file))
	}
	rank := runes[1]
	if rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("second character %q invalid, should be a number between 1 and 8", string(rank))
	}

	return Square{Row: int(rank - '1'), Col: int(file - 'a')}, nil
}

// Index returns the flat board index of the square.
func (s Square) Index() int { return s.Row*8 + s.Col }

// String renders the square back to its two-character lowercase coordinate.
func (s Square) String() string {
	return string(rune('a'+s.Col)) + string(rune('1'+s.Row))
}

// offset returns the square displaced by (dRow, dCol) and whether the
// result is still on the board.
func (s Square) offset(dRow, dCol int) (Square, bool) {
	row := s.Row + dRow
	col := s.Col + dCol
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return Square{}, false
	}
	return Square{Row: row, Col: col}, true
}
