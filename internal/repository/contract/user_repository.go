package contract

import (
	"context"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindOne returns (nil, nil) when no document matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
}
