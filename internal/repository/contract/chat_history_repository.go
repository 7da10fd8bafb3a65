package contract

import (
	"context"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/specification"
)

type ChatHistoryRepository interface {
	Create(ctx context.Context, entry *entity.ChatHistoryEntry) error
	FindAll(ctx context.Context, limit int64, specs ...specification.Specification) ([]*entity.ChatHistoryEntry, error)
}
