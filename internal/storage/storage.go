package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benbeisheim/quickchess-backend/internal/model"
	"github.com/dgraph-io/badger/v4"
)

const gameKeyPrefix = "game/"

var ErrGameNotFound = errors.New("game not found in storage")

// Storage wraps BadgerDB for game snapshots
type Storage struct {
	db *badger.DB
}

// Open opens the database in dir. An empty dir keeps everything in memory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gameKeyPrefix + id)
}

// SaveGame stores the snapshot under its game id, replacing any earlier one
func (s *Storage) SaveGame(snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(snap.ID), data)
	})
}

// LoadGame returns the stored snapshot for id
func (s *Storage) LoadGame(id string) (model.Snapshot, error) {
	var snap model.Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrGameNotFound, id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})

	return snap, err
}

func (s *Storage) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

// GameIDs lists every stored game id
func (s *Storage) GameIDs() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(gameKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().KeyCopy(nil)
			ids = append(ids, string(key[len(gameKeyPrefix):]))
		}
		return nil
	})

	return ids, err
}
