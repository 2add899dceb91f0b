package storage

import (
	"errors"
	"testing"

	"github.com/benbeisheim/quickchess-backend/internal/model"
	"github.com/google/go-cmp/cmp"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})
	return s
}

func TestSaveAndLoadGame(t *testing.T) {
	s := openTestStorage(t)

	want := model.Snapshot{
		ID:         "g1",
		FEN:        "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		HumanID:    "alice",
		HumanColor: "white",
		Seed:       42,
		Phase:      model.PhaseAwaitingOpponentMove,
		Status:     "Black thinking...",
		LastMove:   &model.Ply{Piece: model.ClientPiece{Type: "pawn", Color: "white"}, From: "e2", To: "e4"},
		Captured:   model.CapturedPieces{White: []model.ClientPiece{}, Black: []model.ClientPiece{}},
	}
	if err := s.SaveGame(want); err != nil {
		t.Fatalf("SaveGame() error: %v", err)
	}

	got, err := s.LoadGame("g1")
	if err != nil {
		t.Fatalf("LoadGame() error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded snapshot mismatch (-want +got):\n%s", diff)
	}

	want.Status = "White to move."
	if err := s.SaveGame(want); err != nil {
		t.Fatalf("SaveGame() overwrite error: %v", err)
	}
	if got, _ := s.LoadGame("g1"); got.Status != want.Status {
		t.Errorf("Status after overwrite = %q; want %q", got.Status, want.Status)
	}
}

func TestLoadMissingGame(t *testing.T) {
	s := openTestStorage(t)
	if _, err := s.LoadGame("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("LoadGame(missing) error = %v; want ErrGameNotFound", err)
	}
}

func TestDeleteAndListGames(t *testing.T) {
	s := openTestStorage(t)
	for _, id := range []string{"a", "b", "c"} {
		if err := s.SaveGame(model.Snapshot{ID: id}); err != nil {
			t.Fatalf("SaveGame(%s) error: %v", id, err)
		}
	}
	if err := s.DeleteGame("b"); err != nil {
		t.Fatalf("DeleteGame() error: %v", err)
	}

	ids, err := s.GameIDs()
	if err != nil {
		t.Fatalf("GameIDs() error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, ids); diff != "" {
		t.Errorf("GameIDs mismatch (-want +got):\n%s", diff)
	}
	if _, err := s.LoadGame("b"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("LoadGame(deleted) error = %v; want ErrGameNotFound", err)
	}
}
