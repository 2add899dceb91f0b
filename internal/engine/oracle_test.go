package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
)

// TestLegalMovesMatchReferenceGenerator compares LegalMoves with an
// independent bitboard generator. The positions have no castling rights, no
// en-passant square and no pawn one step from promotion, so both generators
// play by the same rules.
func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	fens := []string{
		startFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b, c := mustFEN(t, fen)

			ref := dragontoothmg.ParseFen(fen)
			refMoves := ref.GenerateLegalMoves()
			want := make([]string, 0, len(refMoves))
			for i := range refMoves {
				want = append(want, refMoves[i].String())
			}
			sort.Strings(want)

			if diff := cmp.Diff(want, moveStrings(LegalMoves(b, c)), cmpEmpty); diff != "" {
				t.Errorf("LegalMoves mismatch (-reference +engine):\n%s", diff)
			}
		})
	}
}
