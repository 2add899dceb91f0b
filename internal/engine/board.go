// Package engine implements the chess rules: the board model, attack maps,
// move generation with self-check filtering, move execution and a
// capture-biased random opponent. All functions are pure over Board values.
package engine

import (
	"fmt"
)

type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return ""
}

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor accepts "white"/"w" and "black"/"b".
func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Piece is a (kind, color) pair. The zero Piece is an empty slot.
type Piece struct {
	Kind  PieceKind
	Color Color
}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Square addresses the board by rank and file index. Rank 0 is Black's back
// rank, rank 7 is White's.
type Square struct {
	Rank int
	File int
}

func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < 8 && s.File >= 0 && s.File < 8
}

func (s Square) index() int {
	return s.Rank*8 + s.File
}

func (s Square) offset(dRank, dFile int) Square {
	return Square{Rank: s.Rank + dRank, File: s.File + dFile}
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", s.File+'a', 8-s.Rank)
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square{Rank: 8 - int(s[1]-'0'), File: int(s[0] - 'a')}, nil
}

func squareAt(index int) Square {
	return Square{Rank: index / 8, File: index % 8}
}

// Board is an immutable 8x8 position snapshot. Every transformation returns a
// new Board; a Board value is never modified after it is built.
type Board struct {
	squares [64]Piece
}

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func InitialBoard() Board {
	var b Board
	for file := 0; file < 8; file++ {
		b.squares[Square{0, file}.index()] = Piece{Kind: backRank[file], Color: Black}
		b.squares[Square{1, file}.index()] = Piece{Kind: Pawn, Color: Black}
		b.squares[Square{6, file}.index()] = Piece{Kind: Pawn, Color: White}
		b.squares[Square{7, file}.index()] = Piece{Kind: backRank[file], Color: White}
	}
	return b
}

// At returns the piece on sq. sq must be valid.
func (b Board) At(sq Square) Piece {
	return b.squares[sq.index()]
}

func (b Board) Copy() Board {
	return Board{squares: b.squares}
}

// With returns a copy of b with sq holding p. Passing the zero Piece clears
// the square.
func (b Board) With(sq Square, p Piece) Board {
	next := b.Copy()
	next.squares[sq.index()] = p
	return next
}

func (b Board) Count() int {
	n := 0
	for _, p := range b.squares {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}

// KingSquare reports where c's king stands; ok is false when it is absent.
func (b Board) KingSquare(c Color) (sq Square, ok bool) {
	king := Piece{Kind: King, Color: c}
	for i, p := range b.squares {
		if p == king {
			return squareAt(i), true
		}
	}
	return Square{}, false
}
