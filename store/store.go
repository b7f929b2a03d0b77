// Package store is the dashboard's local working store: one JSON document per
// conversation under its ID, listed newest-first through an updated_at index.
// The turn model round-trips through Save; it never touches the file directly.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/tidwall/buntdb"

	"github.com/smerlos/convoset/turn"
)

const indexUpdatedAt = "updated_at"

type Store struct {
	db *buntdb.DB
}

// DefaultPath resolves the store file under the user's data directory,
// creating the directory on first use.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".convoset")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "conversations.db"), nil
}

func Open(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.CreateIndex(indexUpdatedAt, "*", buntdb.IndexJSON("updated_at")); err != nil && !errors.Is(err, buntdb.ErrIndexExists) {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the conversation under its ID, stamping UpdatedAt so listings
// stay in recency order.
func (s *Store) Save(c *turn.Conversation) error {
	c.UpdatedAt = time.Now()
	value, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(c.ID, string(value), nil)
		return err
	})
}

func (s *Store) Load(id string) (*turn.Conversation, error) {
	var c *turn.Conversation
	err := s.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(id)
		if err != nil {
			if errors.Is(err, buntdb.ErrNotFound) {
				return turn.ErrConversationNotFound
			}
			return err
		}
		return json.Unmarshal([]byte(value), &c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all stored conversations, most recently updated first.
func (s *Store) List() ([]*turn.Conversation, error) {
	out := []*turn.Conversation{}
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.Descend(indexUpdatedAt, func(key, value string) bool {
			var c *turn.Conversation
			if err := json.Unmarshal([]byte(value), &c); err == nil {
				out = append(out, c)
			}
			return true
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a whole conversation. Individual turns are never deleted.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(id)
		if errors.Is(err, buntdb.ErrNotFound) {
			return turn.ErrConversationNotFound
		}
		return err
	})
}
