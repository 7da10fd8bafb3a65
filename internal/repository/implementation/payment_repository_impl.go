package implementation

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"thrapy-be/internal/entity"
	"thrapy-be/internal/repository/contract"
	"thrapy-be/internal/repository/specification"
)

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) contract.PaymentRepository {
	return &paymentRepository{collection: db.Collection("payments")}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.PaymentRecord) error {
	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

func (r *paymentRepository) FindAll(ctx context.Context, limit int64, specs ...specification.Specification) ([]*entity.PaymentRecord, error) {
	cursor, err := r.collection.Find(ctx, specification.Filter(specs...), options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := make([]*entity.PaymentRecord, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
