package repository

import (
	"context"
	"errors"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid object id")
	ErrDuplicate = errors.New("duplicate document")
)

const (
	AppointmentOptionsCollection = "appointmentOptions"
	BookingsCollection           = "bookings"
	UsersCollection              = "users"
	DoctorsCollection            = "doctors"
	PaymentsCollection           = "payments"
)

type AppointmentOptionRepository interface {
	List(ctx context.Context) ([]models.AppointmentOption, error)
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
}

type BookingRepository interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// FindExisting returns bookings matching the (treatment, date, email) triple.
	FindExisting(ctx context.Context, treatment, date, email string) ([]models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) (*models.WriteResult, error)
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	MarkPaid(ctx context.Context, id, transactionID string) (*models.WriteResult, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.WriteResult, error)
	List(ctx context.Context) ([]models.User, error)
	PromoteToAdmin(ctx context.Context, id string) (*models.WriteResult, error)
}

type DoctorRepository interface {
	Insert(ctx context.Context, doctor *models.Doctor) (*models.WriteResult, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Delete(ctx context.Context, id string) (*models.WriteResult, error)
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) (*models.WriteResult, error)
}

// ParseID converts a hex string into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func insertResult(res *mongo.InsertOneResult) *models.WriteResult {
	return &models.WriteResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) *models.WriteResult {
	return &models.WriteResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func deleteResult(res *mongo.DeleteResult) *models.WriteResult {
	return &models.WriteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// nonNil keeps empty listings encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}
