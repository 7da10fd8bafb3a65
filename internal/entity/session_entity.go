package entity

import (
	"time"
)

type SessionType string

const (
	SessionTypeAI        SessionType = "ai"
	SessionTypeTherapist SessionType = "therapist"
)

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Session lives in the "sessions" collection. Sessions are immutable once
// created; there is no status-transition endpoint, so status stays
// "scheduled".
type Session struct {
	Id              string        `bson:"id" json:"id"`
	UserId          string        `bson:"user_id" json:"user_id"`
	TherapistId     *string       `bson:"therapist_id" json:"therapist_id,omitempty"`
	SessionType     SessionType   `bson:"session_type" json:"session_type"`
	ScheduledDate   *time.Time    `bson:"scheduled_date" json:"scheduled_date,omitempty"`
	DurationMinutes int           `bson:"duration_minutes" json:"duration_minutes"`
	Cost            float64       `bson:"cost" json:"cost"`
	Status          SessionStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
}
