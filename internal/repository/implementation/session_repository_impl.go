package implementation

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/contract"
	"thrapy-be/internal/repository/specification"
)

type sessionRepository struct {
	collection *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) contract.SessionRepository {
	return &sessionRepository{collection: db.Collection("sessions")}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	var session entity.Session
	err := r.collection.FindOne(ctx, specification.Filter(specs...)).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindAll(ctx context.Context, limit int64, specs ...specification.Specification) ([]*entity.Session, error) {
	cursor, err := r.collection.Find(ctx, specification.Filter(specs...), options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := make([]*entity.Session, 0)
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
