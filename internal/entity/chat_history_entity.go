package entity

import (
	"time"
)

// ChatHistoryEntry lives in the "chat_history" collection. Entries are
// append-only: one user message paired with the AI response it produced.
type ChatHistoryEntry struct {
	Id          string    `bson:"id" json:"id"`
	SessionId   string    `bson:"session_id" json:"session_id"`
	UserId      string    `bson:"user_id" json:"user_id"`
	UserMessage string    `bson:"user_message" json:"user_message"`
	AiResponse  string    `bson:"ai_response" json:"ai_response"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
