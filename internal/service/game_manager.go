// service/game_manager.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/benbeisheim/quickchess-backend/internal/model"
	"github.com/benbeisheim/quickchess-backend/internal/storage"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrNotYourTurn  = model.ErrNotYourTurn
	ErrNotInGame    = model.ErrNotInGame
)

// GameStore persists game snapshots. *storage.Storage satisfies it.
type GameStore interface {
	SaveGame(model.Snapshot) error
	LoadGame(id string) (model.Snapshot, error)
}

type ManagerOptions struct {
	// OpponentDelay is how long a queued opponent turn waits before it is
	// played.
	OpponentDelay time.Duration
	// Seed feeds the per-game opponent seeds; 0 derives one from the clock.
	Seed uint64
	// Store is optional; nil keeps games in memory only.
	Store GameStore
}

type GameManager struct {
	games map[string]*model.Game
	queue *model.OpponentQueue
	store GameStore
	delay time.Duration
	seeds *rand.Rand
	mu    sync.RWMutex
}

func NewGameManager(opts ManagerOptions) *GameManager {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &GameManager{
		games: make(map[string]*model.Game),
		queue: model.NewOpponentQueue(),
		store: opts.Store,
		delay: opts.OpponentDelay,
		seeds: rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

// ProcessOpponentMoves plays queued opponent turns as they fall due until ctx
// is done.
func (gm *GameManager) ProcessOpponentMoves(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			gm.RunDueOpponentMoves(now)
		}
	}
}

// RunDueOpponentMoves plays every opponent turn due at or before now and
// returns how many moves were made.
func (gm *GameManager) RunDueOpponentMoves(now time.Time) int {
	played := 0
	for _, gameID := range gm.queue.PopDue(now) {
		game, err := gm.GetGame(gameID)
		if err != nil {
			log.Warnf("opponent turn for %s dropped: %v", gameID, err)
			continue
		}

		m, ok, err := game.PlayOpponentMove()
		if err != nil {
			log.Warnf("game %s: opponent could not move: %v", gameID, err)
			continue
		}
		if ok {
			log.Infof("game %s: opponent played %s", gameID, m)
			played++
		} else {
			log.Infof("game %s: finished, opponent has no legal moves", gameID)
		}
		gm.save(game)
	}
	return played
}

// PendingOpponentMoves is the number of queued opponent turns.
func (gm *GameManager) PendingOpponentMoves() int {
	return gm.queue.Size()
}

// schedule queues the opponent's turn when it is due to move.
func (gm *GameManager) schedule(game *model.Game) {
	if !game.OpponentPending() {
		return
	}
	if err := gm.queue.Push(game.ID, time.Now().Add(gm.delay)); err != nil {
		log.Debugf("schedule opponent: %v", err)
	}
}

func (gm *GameManager) save(game *model.Game) {
	if gm.store == nil {
		return
	}
	if err := gm.store.SaveGame(game.Snapshot()); err != nil {
		log.Errorf("game %s: failed to save: %v", game.ID, err)
	}
}

func (gm *GameManager) CreateGame(gameID string, opts model.GameOptions) (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}
	if opts.Seed == 0 {
		opts.Seed = gm.seeds.Uint64()
	}

	game, err := model.NewGame(gameID, opts)
	if err != nil {
		return nil, err
	}
	gm.games[gameID] = game
	log.Infof("created game %s, human plays %s", gameID, opts.HumanColor)

	gm.save(game)
	gm.schedule(game)
	return game, nil
}

// GetGame returns a live game, restoring it from the store when it is not
// in memory.
func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	game, exists := gm.games[gameID]
	gm.mu.RUnlock()
	if exists {
		return game, nil
	}

	if gm.store == nil {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	snap, err := gm.store.LoadGame(gameID)
	if errors.Is(err, storage.ErrGameNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if err != nil {
		return nil, err
	}
	restored, err := model.RestoreGame(snap)
	if err != nil {
		return nil, err
	}

	gm.mu.Lock()
	if game, exists := gm.games[gameID]; exists {
		gm.mu.Unlock()
		return game, nil
	}
	gm.games[gameID] = restored
	gm.mu.Unlock()

	log.Infof("restored game %s from storage", gameID)
	gm.schedule(restored)
	return restored, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Player, error) {
	log.Debugf("adding player %s to game %s", playerID, gameID)
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.Player{}, err
	}

	color, err := game.AddPlayer(playerID)
	if err != nil {
		return model.Player{}, err
	}
	gm.save(game)
	return model.Player{ID: playerID, Color: color}, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) Click(gameID string, playerID string, sq model.ClickRequest) (bool, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return false, err
	}

	target, err := sq.Parse()
	if err != nil {
		return false, err
	}
	moved, err := game.Click(playerID, target)
	if err != nil {
		return false, err
	}
	if moved {
		gm.save(game)
		gm.schedule(game)
	}
	return moved, nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, req model.MoveRequest) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	m, err := req.Parse()
	if err != nil {
		return err
	}
	if err := game.MakeMove(playerID, m); err != nil {
		return err
	}
	gm.save(game)
	gm.schedule(game)
	return nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	log.Debugf("registering connection for player %s in game %s", playerID, gameID)
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	gm.mu.RLock()
	game, exists := gm.games[gameID]
	gm.mu.RUnlock()
	if !exists {
		return
	}
	game.UnregisterConnection(playerID, conn)
}
