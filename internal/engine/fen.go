package engine

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

var toChessPiece = map[Piece]chess.Piece{
	{Kind: King, Color: White}:   chess.WhiteKing,
	{Kind: Queen, Color: White}:  chess.WhiteQueen,
	{Kind: Rook, Color: White}:   chess.WhiteRook,
	{Kind: Bishop, Color: White}: chess.WhiteBishop,
	{Kind: Knight, Color: White}: chess.WhiteKnight,
	{Kind: Pawn, Color: White}:   chess.WhitePawn,
	{Kind: King, Color: Black}:   chess.BlackKing,
	{Kind: Queen, Color: Black}:  chess.BlackQueen,
	{Kind: Rook, Color: Black}:   chess.BlackRook,
	{Kind: Bishop, Color: Black}: chess.BlackBishop,
	{Kind: Knight, Color: Black}: chess.BlackKnight,
	{Kind: Pawn, Color: Black}:   chess.BlackPawn,
}

var fromChessKind = map[chess.PieceType]PieceKind{
	chess.King:   King,
	chess.Queen:  Queen,
	chess.Rook:   Rook,
	chess.Bishop: Bishop,
	chess.Knight: Knight,
	chess.Pawn:   Pawn,
}

// chess.Square counts from a1; our rank 0 is the eighth rank.
func toChessSquare(sq Square) chess.Square {
	return chess.Square((7-sq.Rank)*8 + sq.File)
}

func fromChessSquare(sq chess.Square) Square {
	return Square{Rank: 7 - int(sq.Rank()), File: int(sq.File())}
}

// ParseFEN decodes a FEN record into a board and the side to move. Castling
// rights and the en-passant square are read but have no effect on the
// engine. The move counters may be omitted.
func ParseFEN(fen string) (Board, Color, error) {
	fields := strings.Fields(fen)
	switch len(fields) {
	case 4:
		fields = append(fields, "0", "1")
	case 6:
	default:
		return Board{}, White, fmt.Errorf("%w: want 4 or 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	var pos chess.Position
	if err := pos.UnmarshalText([]byte(strings.Join(fields, " "))); err != nil {
		return Board{}, White, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	var b Board
	for sq, p := range pos.Board().SquareMap() {
		kind, ok := fromChessKind[p.Type()]
		if !ok {
			continue
		}
		color := White
		if p.Color() == chess.Black {
			color = Black
		}
		b.squares[fromChessSquare(sq).index()] = Piece{Kind: kind, Color: color}
	}

	toMove := White
	if pos.Turn() == chess.Black {
		toMove = Black
	}
	return b, toMove, nil
}

// FEN encodes b with toMove as a FEN record. Castling and en passant are
// always "-".
func FEN(b Board, toMove Color) string {
	squares := make(map[chess.Square]chess.Piece, b.Count())
	for i, p := range b.squares {
		if p.IsEmpty() {
			continue
		}
		squares[toChessSquare(squareAt(i))] = toChessPiece[p]
	}
	side := "w"
	if toMove == Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", chess.NewBoard(squares).String(), side)
}
