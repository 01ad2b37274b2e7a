package repository

import (
	"context"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type appointmentOptionRepository struct {
	coll *mongo.Collection
}

func NewAppointmentOptionRepository(db *mongo.Database) AppointmentOptionRepository {
	return &appointmentOptionRepository{coll: db.Collection(AppointmentOptionsCollection)}
}

func (r *appointmentOptionRepository) List(ctx context.Context) ([]models.AppointmentOption, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, err
	}
	return nonNil(opts), nil
}

func (r *appointmentOptionRepository) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, err
	}
	return nonNil(specialties), nil
}
