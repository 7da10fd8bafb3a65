package implementation

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/contract"
	"thrapy-be/internal/repository/specification"
)

type chatHistoryRepository struct {
	collection *mongo.Collection
}

func NewChatHistoryRepository(db *mongo.Database) contract.ChatHistoryRepository {
	return &chatHistoryRepository{collection: db.Collection("chat_history")}
}

func (r *chatHistoryRepository) Create(ctx context.Context, entry *entity.ChatHistoryEntry) error {
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *chatHistoryRepository) FindAll(ctx context.Context, limit int64, specs ...specification.Specification) ([]*entity.ChatHistoryEntry, error) {
	cursor, err := r.collection.Find(ctx, specification.Filter(specs...), options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]*entity.ChatHistoryEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
