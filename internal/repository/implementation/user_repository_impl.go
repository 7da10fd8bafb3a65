package implementation

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/contract"
	"thrapy-be/internal/repository/specification"
)

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) contract.UserRepository {
	return &userRepository{collection: db.Collection("users")}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, specification.Filter(specs...)).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
