package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSquareRoundTrip(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			want := Square{Row: row, Col: col}
			got, err := ParseSquare(want.String())
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", want.String(), err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		}
	}
}

func TestParseSquareNormalizesInput(t *testing.T) {
	for _, text := range []string{"E2", " e2 ", "\te2\n"} {
		got, err := ParseSquare(text)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", text, err)
		}
		if got != (Square{Row: 1, Col: 4}) {
			t.Fatalf("ParseSquare(%q) = %v, want e2", text, got)
		}
	}
}

func TestParseSquareRejectsMalformedInput(t *testing.T) {
	cases := []string{"", "e", "e22", "i2", "e9", "e0", "22", "ee", "2e", "é2"}
	for _, text := range cases {
		if _, err := ParseSquare(text); err == nil {
			t.Errorf("ParseSquare(%q) succeeded, want error", text)
		}
	}
}

func TestNewSquareRejectsOutOfRange(t *testing.T) {
	cases := [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}}
	for _, c := range cases {
		if _, err := NewSquare(c[0], c[1]); err == nil {
			t.Errorf("NewSquare(%d, %d) succeeded, want error", c[0], c[1])
		}
	}
	if _, err := NewSquare(7, 7); err != nil {
		t.Fatalf("NewSquare(7, 7): %v", err)
	}
}

func TestSquareFromIndexBounds(t *testing.T) {
	if _, err := SquareFromIndex(-1); err == nil {
		t.Error("SquareFromIndex(-1) succeeded, want error")
	}
	if _, err := SquareFromIndex(64); err == nil {
		t.Error("SquareFromIndex(64) succeeded, want error")
	}
	got, err := SquareFromIndex(63)
	if err != nil {
		t.Fatalf("SquareFromIndex(63): %v", err)
	}
	if got != (Square{Row: 7, Col: 7}) {
		t.Fatalf("SquareFromIndex(63) = %v, want h8", got)
	}
	if got.Index() != 63 {
		t.Fatalf("Index() = %d, want 63", got.Index())
	}
}
