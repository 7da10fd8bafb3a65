package contract

import (
	"context"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/specification"
)

type TherapistRepository interface {
	Create(ctx context.Context, profile *entity.TherapistProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TherapistProfile, error)
	FindAll(ctx context.Context, limit int64, specs ...specification.Specification) ([]*entity.TherapistProfile, error)
}

type AvailabilityRepository interface {
	// Upsert replaces the availability document for the therapist wholesale,
	// inserting it if none exists.
	Upsert(ctx context.Context, availability *entity.TherapistAvailability) error
}
