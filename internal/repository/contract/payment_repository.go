package contract

import (
	"context"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/specification"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.PaymentRecord) error
	FindAll(ctx context.Context, limit int64, specs ...specification.Specification) ([]*entity.PaymentRecord, error)
}
