package dto

import (
	"thrapy-be/internal/entity"
)

type TherapistRegistrationRequest struct {
	LicenseNumber   string  `json:"license_number" validate:"required"`
	Specialization  string  `json:"specialization" validate:"required"`
	HourlyRate      float64 `json:"hourly_rate" validate:"required,gt=0"`
	Bio             string  `json:"bio" validate:"required"`
	YearsExperience int     `json:"years_experience" validate:"gte=0"`
}

type UpdateAvailabilityRequest struct {
	// Slots replace the stored availability wholesale. Ordering and overlap
	// are intentionally unvalidated.
	Availability []AvailabilitySlotDTO `json:"availability" validate:"required,dive"`
}

type AvailabilitySlotDTO struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

func (d AvailabilitySlotDTO) ToEntity() entity.AvailabilitySlot {
	return entity.AvailabilitySlot{
		DayOfWeek: d.DayOfWeek,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
}
