package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustFEN(t *testing.T, fen string) (Board, Color) {
	t.Helper()
	b, c, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return b, c
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return sq
}

func mustMove(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", s, err)
	}
	return m
}

// moveStrings renders moves as sorted coordinate strings so lists can be
// compared as sets.
func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}

// cmpEmpty treats nil and empty slices as equal.
var cmpEmpty = cmpopts.EquateEmpty()
