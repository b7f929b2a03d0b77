package data

import (
	"database/sql"
)

type Models struct {
	Conversations *ConversationModel
}

func NewModels(db *sql.DB) *Models {
	return &Models{
		Conversations: &ConversationModel{DB: db},
	}
}
