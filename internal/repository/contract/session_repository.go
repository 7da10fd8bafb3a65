package contract

import (
	"context"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	FindAll(ctx context.Context, limit int64, specs ...specification.Specification) ([]*entity.Session, error)
}
