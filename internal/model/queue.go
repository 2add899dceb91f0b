package model

import (
	"fmt"
	"sync"
	"time"
)

// PendingTurn is an opponent move waiting for its thinking delay to pass.
type PendingTurn struct {
	GameID string
	DueAt  time.Time
}

// OpponentQueue holds the games whose automated side is due to move.
type OpponentQueue struct {
	turns []PendingTurn
	mu    sync.Mutex
}

func NewOpponentQueue() *OpponentQueue {
	return &OpponentQueue{
		turns: []PendingTurn{},
	}
}

func (q *OpponentQueue) Push(gameID string, dueAt time.Time) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, t := range q.turns {
		if t.GameID == gameID {
			return fmt.Errorf("game %s already queued", gameID)
		}
	}

	q.turns = append(q.turns, PendingTurn{
		GameID: gameID,
		DueAt:  dueAt,
	})
	return nil
}

// PopDue removes and returns the ids of every game due at or before now, in
// the order they were queued.
func (q *OpponentQueue) PopDue(now time.Time) []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []string
	waiting := q.turns[:0]
	for _, t := range q.turns {
		if t.DueAt.After(now) {
			waiting = append(waiting, t)
			continue
		}
		due = append(due, t.GameID)
	}
	q.turns = waiting
	return due
}

func (q *OpponentQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.turns)
}
