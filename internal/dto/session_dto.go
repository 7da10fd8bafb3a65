package dto

import (
	"time"
)

type CreateSessionRequest struct {
	SessionType     string     `json:"session_type" validate:"required"`
	TherapistId     *string    `json:"therapist_id"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	DurationMinutes int        `json:"duration_minutes" validate:"omitempty,gt=0"`
}
