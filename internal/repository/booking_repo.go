package repository

import (
	"context"
	"errors"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type bookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{coll: db.Collection(BookingsCollection)}
}

func (r *bookingRepository) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return nonNil(bookings), nil
}

func (r *bookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"appointDate": date})
}

func (r *bookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *bookingRepository) FindExisting(ctx context.Context, treatment, date, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"appointDate": date,
		"email":       email,
		"treatment":   treatment,
	})
}

func (r *bookingRepository) Insert(ctx context.Context, booking *models.Booking) (*models.WriteResult, error) {
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return insertResult(res), nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) MarkPaid(ctx context.Context, id, transactionID string) (*models.WriteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}
