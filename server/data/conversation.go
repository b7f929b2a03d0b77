package data

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"time"

	"github.com/smerlos/convoset/turn"
	"github.com/smerlos/convoset/utils"
)

//go:embed schema.sql
var Schema string

type ConversationModel struct {
	DB *sql.DB
}

// ConversationMetadata is the listing projection; full turns are loaded on Get.
type ConversationMetadata struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Domain    string    `json:"domain"`
	TurnCount int       `json:"turn_count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Save stores the whole conversation transactionally. Turns are deleted and
// reinserted in sequence order; the row key is (conversation_id,
// sequence_number), so the contiguity invariant must hold before saving.
func (m *ConversationModel) Save(c *turn.Conversation) error {
	tx, err := m.DB.Begin()
	if err != nil {
		return err
	}

	c.UpdatedAt = time.Now()

	query := `
	INSERT INTO conversations (id, title, domain, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET title = excluded.title, domain = excluded.domain, updated_at = excluded.updated_at;
	`
	if _, err = tx.Exec(query, c.ID, c.Title, c.Domain, c.CreatedAt, c.UpdatedAt); err != nil {
		tx.Rollback()
		return err
	}

	if _, err = tx.Exec(`DELETE FROM turns WHERE conversation_id = ?;`, c.ID); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(`
	INSERT INTO turns (conversation_id, sequence_number, payload, created_at)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range c.Turns {
		payload, jsonErr := json.Marshal(t)
		if jsonErr != nil {
			tx.Rollback()
			return jsonErr
		}
		if _, err = stmt.Exec(c.ID, t.Sequence, string(payload), c.UpdatedAt); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (m *ConversationModel) Get(id string) (*turn.Conversation, error) {
	c := &turn.Conversation{ID: id, Turns: make([]*turn.Turn, 0)}

	var createdAt, updatedAt string
	err := m.DB.QueryRow(`
	SELECT title, domain, created_at, updated_at FROM conversations WHERE id = ?;
	`, id).Scan(&c.Title, &c.Domain, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, turn.ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}

	if c.CreatedAt, err = utils.ParseStoredTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = utils.ParseStoredTime(updatedAt); err != nil {
		return nil, err
	}

	rows, err := m.DB.Query(`
	SELECT payload FROM turns WHERE conversation_id = ? ORDER BY sequence_number ASC;
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var t turn.Turn
		if err := json.Unmarshal([]byte(payload), &t); err != nil {
			return nil, err
		}
		c.Turns = append(c.Turns, &t)
	}
	return c, rows.Err()
}

func (m *ConversationModel) List() ([]ConversationMetadata, error) {
	rows, err := m.DB.Query(`
	SELECT c.id, c.title, c.domain, c.updated_at, COUNT(t.sequence_number)
	FROM conversations c
	LEFT JOIN turns t ON t.conversation_id = c.id
	GROUP BY c.id
	ORDER BY c.updated_at DESC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ConversationMetadata{}
	for rows.Next() {
		var meta ConversationMetadata
		var updatedAt string
		if err := rows.Scan(&meta.ID, &meta.Title, &meta.Domain, &updatedAt, &meta.TurnCount); err != nil {
			return nil, err
		}
		if meta.UpdatedAt, err = utils.ParseStoredTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, meta)
	}
	return out, rows.Err()
}

func (m *ConversationModel) Delete(id string) error {
	res, err := m.DB.Exec(`DELETE FROM conversations WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	if _, err := m.DB.Exec(`DELETE FROM turns WHERE conversation_id = ?;`, id); err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return turn.ErrConversationNotFound
	}
	return nil
}
