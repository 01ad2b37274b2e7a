package repository

import (
	"context"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type doctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) DoctorRepository {
	return &doctorRepository{coll: db.Collection(DoctorsCollection)}
}

func (r *doctorRepository) Insert(ctx context.Context, doctor *models.Doctor) (*models.WriteResult, error) {
	res, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return nil, err
	}
	return insertResult(res), nil
}

func (r *doctorRepository) List(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return nonNil(doctors), nil
}

func (r *doctorRepository) Delete(ctx context.Context, id string) (*models.WriteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	return deleteResult(res), nil
}
