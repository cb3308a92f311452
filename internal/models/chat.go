package models

import "time"

// ChatMessage is one stored turn of a guide conversation. Rows are append-only;
// session ordering is by CreatedAt.
type ChatMessage struct {
	ID               string    `db:"id"`
	SessionID        string    `db:"session_id"`
	UserMessage      string    `db:"user_message"`
	AIResponse       string    `db:"ai_response"`
	MonasteryContext *string   `db:"monastery_context"`
	CreatedAt        time.Time `db:"created_at"`
}
