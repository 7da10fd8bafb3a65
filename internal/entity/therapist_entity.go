package entity

import (
	"time"
)

// TherapistProfile lives in the "therapists" collection, one per user of role
// therapist.
type TherapistProfile struct {
	Id              string    `bson:"id" json:"id"`
	UserId          string    `bson:"user_id" json:"user_id"`
	LicenseNumber   string    `bson:"license_number" json:"license_number"`
	Specialization  string    `bson:"specialization" json:"specialization"`
	HourlyRate      float64   `bson:"hourly_rate" json:"hourly_rate"`
	Bio             string    `bson:"bio" json:"bio"`
	YearsExperience int       `bson:"years_experience" json:"years_experience"`
	IsAvailable     bool      `bson:"is_available" json:"is_available"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// AvailabilitySlot is stored as free-form data: no overlap or ordering
// validation is applied.
type AvailabilitySlot struct {
	DayOfWeek int    `bson:"day_of_week" json:"day_of_week"` // 0-6 (Monday-Sunday)
	StartTime string `bson:"start_time" json:"start_time"`   // "09:00"
	EndTime   string `bson:"end_time" json:"end_time"`       // "17:00"
}

// TherapistAvailability lives in "therapist_availability", keyed by
// therapist_id and replaced wholesale on every update.
type TherapistAvailability struct {
	TherapistId  string             `bson:"therapist_id" json:"therapist_id"`
	Availability []AvailabilitySlot `bson:"availability" json:"availability"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
