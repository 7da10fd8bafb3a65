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

type therapistRepository struct {
	collection *mongo.Collection
}

func NewTherapistRepository(db *mongo.Database) contract.TherapistRepository {
	return &therapistRepository{collection: db.Collection("therapists")}
}

func (r *therapistRepository) Create(ctx context.Context, profile *entity.TherapistProfile) error {
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *therapistRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TherapistProfile, error) {
	var profile entity.TherapistProfile
	err := r.collection.FindOne(ctx, specification.Filter(specs...)).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *therapistRepository) FindAll(ctx context.Context, limit int64, specs ...specification.Specification) ([]*entity.TherapistProfile, error) {
	cursor, err := r.collection.Find(ctx, specification.Filter(specs...), options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	profiles := make([]*entity.TherapistProfile, 0)
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
