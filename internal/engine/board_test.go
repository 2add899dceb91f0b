package engine

import (
	"errors"
	"testing"
)

func TestInitialBoard(t *testing.T) {
	b := InitialBoard()

	if got := b.Count(); got != 32 {
		t.Fatalf("Count() = %d; want 32", got)
	}

	tests := []struct {
		square string
		want   Piece
	}{
		{"a1", Piece{Kind: Rook, Color: White}},
		{"b1", Piece{Kind: Knight, Color: White}},
		{"c1", Piece{Kind: Bishop, Color: White}},
		{"d1", Piece{Kind: Queen, Color: White}},
		{"e1", Piece{Kind: King, Color: White}},
		{"h1", Piece{Kind: Rook, Color: White}},
		{"e2", Piece{Kind: Pawn, Color: White}},
		{"e7", Piece{Kind: Pawn, Color: Black}},
		{"d8", Piece{Kind: Queen, Color: Black}},
		{"e8", Piece{Kind: King, Color: Black}},
		{"g8", Piece{Kind: Knight, Color: Black}},
		{"e4", Piece{}},
		{"c6", Piece{}},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := b.At(mustSquare(t, tt.square)); got != tt.want {
				t.Errorf("At(%s) = %+v; want %+v", tt.square, got, tt.want)
			}
		})
	}
}

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		name string
		want Square
	}{
		{"a8", Square{Rank: 0, File: 0}},
		{"h8", Square{Rank: 0, File: 7}},
		{"a1", Square{Rank: 7, File: 0}},
		{"e2", Square{Rank: 6, File: 4}},
		{"h1", Square{Rank: 7, File: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSquare(tt.name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.name, got, tt.want)
			}
			if got.String() != tt.name {
				t.Errorf("String() = %q; want %q", got.String(), tt.name)
			}
		})
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "E2", "e22"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", bad, err)
		}
	}
}

func TestBoardValueSemantics(t *testing.T) {
	b := InitialBoard()
	e4 := mustSquare(t, "e4")

	next := b.With(e4, Piece{Kind: Queen, Color: Black})
	if !b.At(e4).IsEmpty() {
		t.Error("With() modified the receiver")
	}
	if got := next.At(e4); got != (Piece{Kind: Queen, Color: Black}) {
		t.Errorf("With() result At(e4) = %+v; want black queen", got)
	}

	cp := b.Copy()
	if cp != b {
		t.Error("Copy() differs from the original")
	}
	cleared := cp.With(mustSquare(t, "e1"), Piece{})
	if b.At(mustSquare(t, "e1")).Kind != King {
		t.Error("clearing a square on a copy changed the original")
	}
	if cleared.Count() != 31 {
		t.Errorf("Count() after clearing = %d; want 31", cleared.Count())
	}
}

func TestKingSquare(t *testing.T) {
	b := InitialBoard()
	if sq, ok := b.KingSquare(White); !ok || sq != mustSquare(t, "e1") {
		t.Errorf("KingSquare(White) = %v, %v; want e1, true", sq, ok)
	}
	if sq, ok := b.KingSquare(Black); !ok || sq != mustSquare(t, "e8") {
		t.Errorf("KingSquare(Black) = %v, %v; want e8, true", sq, ok)
	}

	var empty Board
	if _, ok := empty.KingSquare(White); ok {
		t.Error("KingSquare(White) on an empty board reported a king")
	}
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]Color{"white": White, "w": White, "black": Black, "b": Black} {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseColor("red"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("ParseColor(red) error = %v; want ErrInvalidColor", err)
	}
	if White.Opponent() != Black || Black.Opponent() != White {
		t.Error("Opponent() is not an involution")
	}
}
