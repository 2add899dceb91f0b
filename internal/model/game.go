package model

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/quickchess-backend/internal/engine"
	"github.com/benbeisheim/quickchess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// Phase is where a game stands in the human/opponent turn cycle.
type Phase string

const (
	PhaseAwaitingSelection    Phase = "awaitingSelection"
	PhaseAwaitingDestination  Phase = "awaitingDestination"
	PhaseAwaitingOpponentMove Phase = "awaitingOpponentMove"
	// PhaseFinished means the side to move has no legal move. Checkmate and
	// stalemate are not told apart.
	PhaseFinished Phase = "finished"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
	// writeMu serializes writes; a websocket.Conn allows one writer at a time.
	writeMu sync.Mutex
}

type GameOptions struct {
	HumanColor engine.Color
	// FEN is the starting position; empty means the standard one.
	FEN  string
	Seed uint64
}

// Game is one human-versus-engine session. The engine itself is stateless;
// everything that changes between turns lives here.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       engine.Board
	toMove      engine.Color
	human       Player
	opponent    *engine.Opponent
	seed        uint64
	phase       Phase
	selected    *engine.Square
	selectable  []engine.Move
	status      string
	lastMove    *Ply
	captured    CapturedPieces
	connections *GameConnections
}

type GameState struct {
	Board          [][]*ClientPiece `json:"board"`
	FEN            string           `json:"fen"`
	ToMove         string           `json:"toMove"`
	Phase          Phase            `json:"phase"`
	IsCheck        bool             `json:"isCheck"`
	SelectedSquare *string          `json:"selectedSquare"`
	LegalMoves     []string         `json:"legalMoves"`
	Status         string           `json:"status"`
	LastMove       *Ply             `json:"lastMove"`
	CapturedPieces CapturedPieces   `json:"capturedPieces"`
	Players        struct {
		Human    ClientPlayer `json:"human"`
		Opponent ClientPlayer `json:"opponent"`
	} `json:"players"`
}

func NewGame(id string, opts GameOptions) (*Game, error) {
	board, toMove := engine.InitialBoard(), engine.White
	if opts.FEN != "" {
		var err error
		board, toMove, err = engine.ParseFEN(opts.FEN)
		if err != nil {
			return nil, err
		}
	}

	g := &Game{
		ID:          id,
		board:       board,
		toMove:      toMove,
		human:       Player{Color: opts.HumanColor},
		opponent:    engine.NewOpponent(opts.HumanColor.Opponent(), opts.Seed),
		seed:        opts.Seed,
		captured:    newCapturedPieces(),
		connections: NewGameConnections(),
	}
	g.startTurn()
	return g, nil
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// startTurn sets the phase and status for whichever side is to move.
func (g *Game) startTurn() {
	g.selected = nil
	g.selectable = nil

	if g.toMove == g.opponent.Color {
		g.phase = PhaseAwaitingOpponentMove
		g.status = fmt.Sprintf("%s thinking...", title(g.toMove))
		return
	}

	if !engine.HasLegalMove(g.board, g.toMove) {
		g.phase = PhaseFinished
		g.status = fmt.Sprintf("%s has no legal moves.", title(g.toMove))
		return
	}
	g.phase = PhaseAwaitingSelection
	switch {
	case engine.IsInCheck(g.board, g.toMove):
		g.status = fmt.Sprintf("Check on %s! Your move.", title(g.toMove))
	case g.lastMove == nil:
		g.status = fmt.Sprintf("%s to move. Click a piece, then a destination.", title(g.toMove))
	default:
		g.status = fmt.Sprintf("%s to move.", title(g.toMove))
	}
}

func title(c engine.Color) string {
	if c == engine.White {
		return "White"
	}
	return "Black"
}

func (g *Game) AddPlayer(playerID string) (engine.Color, error) {
	log.Debugf("adding player %s to game %s", playerID, g.ID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.human.ID == "" {
		g.human.ID = playerID
		return g.human.Color, nil
	}
	if g.human.ID == playerID {
		return g.human.Color, nil
	}
	return g.human.Color, ErrGameFull
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state()
}

func (g *Game) state() GameState {
	s := GameState{
		Board:          newBoardState(g.board),
		FEN:            engine.FEN(g.board, g.toMove),
		ToMove:         g.toMove.String(),
		Phase:          g.phase,
		IsCheck:        engine.IsInCheck(g.board, g.toMove),
		LegalMoves:     make([]string, 0, len(g.selectable)),
		Status:         g.status,
		LastMove:       g.lastMove,
		CapturedPieces: g.captured,
	}
	if g.selected != nil {
		sq := g.selected.String()
		s.SelectedSquare = &sq
	}
	for _, m := range g.selectable {
		s.LegalMoves = append(s.LegalMoves, m.To.String())
	}
	s.Players.Human = g.human.client()
	s.Players.Opponent = ClientPlayer{ID: "engine", Color: g.opponent.Color.String()}
	return s
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// OpponentPending reports whether the automated side is due to move.
func (g *Game) OpponentPending() bool {
	return g.Phase() == PhaseAwaitingOpponentMove
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	return g.human.ID != "" && g.human.ID == playerID
}

func (g *Game) canSpectate() bool {
	return g.human.ID == ""
}

// checkHumanTurn reports why playerID may not act right now, if anything.
func (g *Game) checkHumanTurn(playerID string) error {
	if !g.isPlayerInGame(playerID) {
		return ErrNotInGame
	}
	switch g.phase {
	case PhaseFinished:
		return ErrGameOver
	case PhaseAwaitingOpponentMove:
		return ErrNotYourTurn
	}
	return nil
}

// LegalMoves lists the human's legal moves, optionally only those starting
// on from.
func (g *Game) LegalMoves(from *engine.Square) []engine.Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseFinished || g.toMove != g.human.Color {
		return nil
	}
	if from != nil {
		return engine.LegalMovesFrom(g.board, g.toMove, *from)
	}
	return engine.LegalMoves(g.board, g.toMove)
}

// Click drives the select-then-destination flow. Clicking one of the
// human's pieces selects it and caches its legal moves; clicking a cached
// destination plays that move; any other click keeps an existing selection,
// or clears it when nothing usable was selected. It reports whether a move
// was played.
func (g *Game) Click(playerID string, sq engine.Square) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkHumanTurn(playerID); err != nil {
		return false, err
	}
	if !sq.Valid() {
		return false, fmt.Errorf("%w: %v", engine.ErrInvalidSquare, sq)
	}

	p := g.board.At(sq)
	own := !p.IsEmpty() && p.Color == g.human.Color

	if g.phase == PhaseAwaitingDestination {
		for _, m := range g.selectable {
			if m.To == sq {
				g.play(m)
				return true, nil
			}
		}
		if own {
			g.selectSquare(sq)
		}
		go g.broadcastState(g.state())
		return false, nil
	}

	if own {
		g.selectSquare(sq)
	} else {
		g.selected = nil
		g.selectable = nil
	}
	go g.broadcastState(g.state())
	return false, nil
}

func (g *Game) selectSquare(sq engine.Square) {
	g.selected = &sq
	g.selectable = engine.LegalMovesFrom(g.board, g.human.Color, sq)
	g.phase = PhaseAwaitingDestination
}

// MakeMove plays a move the human sent directly, bypassing selection.
func (g *Game) MakeMove(playerID string, m engine.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	log.Debugf("game %s: player %s moves %s", g.ID, playerID, m)

	if err := g.checkHumanTurn(playerID); err != nil {
		return err
	}
	if _, err := engine.ApplyLegalMove(g.board, g.human.Color, m); err != nil {
		return err
	}
	g.play(m)
	return nil
}

// play applies a move already known to be legal for the side to move and
// hands the turn over.
func (g *Game) play(m engine.Move) {
	g.lastMove = newPly(g.board, m)
	if captured := g.board.At(m.To); !captured.IsEmpty() {
		g.captured.add(g.toMove, captured)
	}
	g.board = engine.ApplyMove(g.board, m)
	g.toMove = g.toMove.Opponent()
	g.startTurn()

	go g.broadcastState(g.state())
}

// PlayOpponentMove lets the automated side move. When it has no legal move
// the game finishes and false is returned.
func (g *Game) PlayOpponentMove() (engine.Move, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseAwaitingOpponentMove {
		return engine.Move{}, false, ErrNotOpponentTurn
	}

	m, ok := g.opponent.ChooseMove(g.board)
	if !ok {
		g.phase = PhaseFinished
		g.status = fmt.Sprintf("%s has no legal moves.", title(g.opponent.Color))
		log.Infof("game %s: %s has no legal moves", g.ID, g.opponent.Color)
		go g.broadcastState(g.state())
		return engine.Move{}, false, nil
	}
	g.play(m)
	return m, true, nil
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	connID := fmt.Sprintf("%p", conn)
	log.Debugf("starting RegisterConnection for player %s, conn %s", playerID, connID)

	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	state := g.state()
	g.mu.Unlock()

	if !isAuthorized {
		return ErrNotInGame
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// If we already have a healthy connection, keep it and reject the new one
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return ErrAlreadyConnected
	}

	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	log.Debugf("registered connection %s for player %s", connID, playerID)

	go g.broadcastState(state)
	return nil
}

// UnregisterConnection forgets conn if it is still playerID's registered
// connection.
func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		log.Debugf("unregistering connection for player %s", playerID)
		delete(g.connections.connections, playerID)
	}
}

// SendError reports err to playerID's connection only.
func (g *Game) SendError(playerID string, err error) {
	g.connections.mu.RLock()
	conn, ok := g.connections.connections[playerID]
	g.connections.mu.RUnlock()
	if !ok {
		return
	}

	msg, merr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if merr != nil {
		log.Errorf("game %s: failed to marshal error: %v", g.ID, merr)
		return
	}
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()
	if werr := conn.WriteJSON(msg); werr != nil {
		log.Warnf("game %s: failed to send error to player %s: %v", g.ID, playerID, werr)
	}
}

// broadcastState pushes state to every open connection, dropping those that
// fail.
func (g *Game) broadcastState(state GameState) {
	g.connections.mu.RLock()
	activeConnections := make(map[string]*websocket.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		activeConnections[playerID] = conn
	}
	g.connections.mu.RUnlock()

	if len(activeConnections) == 0 {
		return
	}

	payload, err := json.Marshal(state)
	if err != nil {
		log.Errorf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}

	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()
	for playerID, conn := range activeConnections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Warnf("game %s: failed to send state to player %s: %v", g.ID, playerID, err)
			g.connections.mu.Lock()
			delete(g.connections.connections, playerID)
			g.connections.mu.Unlock()
		}
	}
}
