package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttackedSquaresInitialPosition(t *testing.T) {
	b := InitialBoard()
	white := AttackedSquares(b, White)
	black := AttackedSquares(b, Black)

	for file := 0; file < 8; file++ {
		if sq := (Square{Rank: 5, File: file}); !white.Has(sq) {
			t.Errorf("white does not attack %s", sq)
		}
		if sq := (Square{Rank: 2, File: file}); !black.Has(sq) {
			t.Errorf("black does not attack %s", sq)
		}
		if sq := (Square{Rank: 4, File: file}); white.Has(sq) {
			t.Errorf("white attacks %s through its own pawns", sq)
		}
	}
}

func TestPawnAttacksEmptyDiagonals(t *testing.T) {
	b, _ := mustFEN(t, "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	attacked := AttackedSquares(b, White)

	for _, s := range []string{"d5", "f5"} {
		if !attacked.Has(mustSquare(t, s)) {
			t.Errorf("pawn on e4 should attack empty %s", s)
		}
	}
	if attacked.Has(mustSquare(t, "e5")) {
		t.Error("pawn on e4 should not attack the square in front of it")
	}

	blackPawn, _ := mustFEN(t, "4k3/8/8/3p4/8/8/8/4K3 b - - 0 1")
	got := AttackedSquares(blackPawn, Black)
	for _, s := range []string{"c4", "e4"} {
		if !got.Has(mustSquare(t, s)) {
			t.Errorf("black pawn on d5 should attack %s", s)
		}
	}
}

func TestRayStopsAfterFirstBlocker(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		color   Color
		want    []string
		notWant []string
	}{
		{
			name:    "enemy blocker included",
			fen:     "7k/8/8/8/p7/8/8/R6K w - - 0 1",
			color:   White,
			want:    []string{"a2", "a3", "a4", "b1", "g1"},
			notWant: []string{"a5", "a8"},
		},
		{
			name:    "friendly blocker included",
			fen:     "7k/8/8/8/8/P7/8/R6K w - - 0 1",
			color:   White,
			want:    []string{"a2", "a3"},
			notWant: []string{"a4"},
		},
		{
			name:    "bishop diagonal",
			fen:     "7k/8/8/8/8/2n5/8/B6K w - - 0 1",
			color:   White,
			want:    []string{"b2", "c3"},
			notWant: []string{"d4", "h8"},
		},
		{
			name:    "queen covers both ray sets",
			fen:     "k7/8/8/3q4/8/8/8/7K b - - 0 1",
			color:   Black,
			want:    []string{"d1", "d8", "a5", "h5", "a8", "h1", "a2", "g8"},
			notWant: []string{"e3", "c7"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := mustFEN(t, tt.fen)
			attacked := AttackedSquares(b, tt.color)
			for _, s := range tt.want {
				if !attacked.Has(mustSquare(t, s)) {
					t.Errorf("%s not attacked", s)
				}
			}
			for _, s := range tt.notWant {
				if attacked.Has(mustSquare(t, s)) {
					t.Errorf("%s attacked beyond the blocker", s)
				}
			}
		})
	}
}

func TestKnightAndKingOffsets(t *testing.T) {
	var b Board
	b = b.With(mustSquare(t, "a1"), Piece{Kind: Knight, Color: White})
	b = b.With(mustSquare(t, "h8"), Piece{Kind: King, Color: Black})

	var got []string
	for _, sq := range AttackedSquares(b, White).Squares() {
		got = append(got, sq.String())
	}
	if diff := cmp.Diff([]string{"b3", "c2"}, got); diff != "" {
		t.Errorf("knight on a1 attacks mismatch (-want +got):\n%s", diff)
	}

	if n := AttackedSquares(b, Black).Len(); n != 3 {
		t.Errorf("king on h8 attacks %d squares; want 3", n)
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		color Color
		want  bool
	}{
		{"initial white", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", White, false},
		{"initial black", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", Black, false},
		{"rook on open file", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", Black, true},
		{"rook blocked", "4k3/8/4n3/8/8/8/8/4R1K1 b - - 0 1", Black, false},
		{"knight check", "4k3/8/3N4/8/8/8/8/6K1 b - - 0 1", Black, true},
		{"pawn check", "4k3/3P4/8/8/8/8/8/6K1 b - - 0 1", Black, true},
		{"pawn does not check straight ahead", "8/8/8/8/8/4k3/4P3/6K1 b - - 0 1", Black, false},
		{"no white king", "4k3/8/8/8/8/8/8/4r3 w - - 0 1", White, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := mustFEN(t, tt.fen)
			if got := IsInCheck(b, tt.color); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v; want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestIsInCheckWithoutKings(t *testing.T) {
	var b Board
	b = b.With(mustSquare(t, "d4"), Piece{Kind: Queen, Color: Black})
	if IsInCheck(b, White) || IsInCheck(b, Black) {
		t.Error("a side without a king must never be in check")
	}
}
