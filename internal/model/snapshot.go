package model

import (
	"fmt"

	"github.com/benbeisheim/quickchess-backend/internal/engine"
)

// Snapshot is the persisted form of a Game. Open connections and the
// selection are not kept; the opponent's random source restarts from Seed.
type Snapshot struct {
	ID         string         `json:"id"`
	FEN        string         `json:"fen"`
	HumanID    string         `json:"humanId"`
	HumanColor string         `json:"humanColor"`
	Seed       uint64         `json:"seed"`
	Phase      Phase          `json:"phase"`
	Status     string         `json:"status"`
	LastMove   *Ply           `json:"lastMove"`
	Captured   CapturedPieces `json:"captured"`
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	phase := g.phase
	if phase == PhaseAwaitingDestination {
		phase = PhaseAwaitingSelection
	}
	return Snapshot{
		ID:         g.ID,
		FEN:        engine.FEN(g.board, g.toMove),
		HumanID:    g.human.ID,
		HumanColor: g.human.Color.String(),
		Seed:       g.seed,
		Phase:      phase,
		Status:     g.status,
		LastMove:   g.lastMove,
		Captured:   g.captured,
	}
}

func RestoreGame(s Snapshot) (*Game, error) {
	humanColor, err := engine.ParseColor(s.HumanColor)
	if err != nil {
		return nil, fmt.Errorf("restore game %s: %w", s.ID, err)
	}
	board, toMove, err := engine.ParseFEN(s.FEN)
	if err != nil {
		return nil, fmt.Errorf("restore game %s: %w", s.ID, err)
	}

	g := &Game{
		ID:          s.ID,
		board:       board,
		toMove:      toMove,
		human:       Player{ID: s.HumanID, Color: humanColor},
		opponent:    engine.NewOpponent(humanColor.Opponent(), s.Seed),
		seed:        s.Seed,
		phase:       s.Phase,
		status:      s.Status,
		lastMove:    s.LastMove,
		captured:    s.Captured,
		connections: NewGameConnections(),
	}
	if g.captured.White == nil {
		g.captured.White = make([]ClientPiece, 0)
	}
	if g.captured.Black == nil {
		g.captured.Black = make([]ClientPiece, 0)
	}
	if g.phase == "" {
		g.startTurn()
	}
	return g, nil
}
