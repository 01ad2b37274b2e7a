package repository

import (
	"context"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type paymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{coll: db.Collection(PaymentsCollection)}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *models.Payment) (*models.WriteResult, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}
