package implementation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/contract"
)

type availabilityRepository struct {
	collection *mongo.Collection
}

func NewAvailabilityRepository(db *mongo.Database) contract.AvailabilityRepository {
	return &availabilityRepository{collection: db.Collection("therapist_availability")}
}

func (r *availabilityRepository) Upsert(ctx context.Context, availability *entity.TherapistAvailability) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"therapist_id": availability.TherapistId},
		availability,
		options.Replace().SetUpsert(true),
	)
	return err
}
