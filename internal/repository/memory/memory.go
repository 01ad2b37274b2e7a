// Package memory is an in-process substitute for the MongoDB repositories.
// It honors the same uniqueness rule as the bookings index so the booking
// flow behaves identically against it.
package memory

import (
	"context"
	"sync"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/harentsoaR/doctors-portal/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu       sync.Mutex
	options  []models.AppointmentOption
	bookings []models.Booking
	users    []models.User
	doctors  []models.Doctor
	payments []models.Payment
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AddOption(opt models.AppointmentOption) models.AppointmentOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	if opt.ID.IsZero() {
		opt.ID = primitive.NewObjectID()
	}
	opt.Slots = append([]string(nil), opt.Slots...)
	s.options = append(s.options, opt)
	return opt
}

func (s *Store) Options() repository.AppointmentOptionRepository { return optionRepo{s} }
func (s *Store) Bookings() repository.BookingRepository          { return bookingRepo{s} }
func (s *Store) Users() repository.UserRepository                { return userRepo{s} }
func (s *Store) Doctors() repository.DoctorRepository            { return doctorRepo{s} }
func (s *Store) Payments() repository.PaymentRepository          { return paymentRepo{s} }

// AllBookings returns a snapshot of every stored booking.
func (s *Store) AllBookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Booking(nil), s.bookings...)
}

func (s *Store) AllPayments() []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Payment(nil), s.payments...)
}

func inserted(id primitive.ObjectID) *models.WriteResult {
	return &models.WriteResult{Acknowledged: true, InsertedID: id}
}

type optionRepo struct{ s *Store }

func (r optionRepo) List(_ context.Context) ([]models.AppointmentOption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.AppointmentOption, 0, len(r.s.options))
	for _, opt := range r.s.options {
		opt.Slots = append([]string(nil), opt.Slots...)
		out = append(out, opt)
	}
	return out, nil
}

func (r optionRepo) ListSpecialties(_ context.Context) ([]models.Specialty, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Specialty, 0, len(r.s.options))
	for _, opt := range r.s.options {
		out = append(out, models.Specialty{ID: opt.ID, Name: opt.Name})
	}
	return out, nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) filter(match func(models.Booking) bool) []models.Booking {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Booking, 0)
	for _, b := range r.s.bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}

func (r bookingRepo) FindByDate(_ context.Context, date string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.AppointDate == date }), nil
}

func (r bookingRepo) FindByEmail(_ context.Context, email string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.Email == email }), nil
}

func (r bookingRepo) FindExisting(_ context.Context, treatment, date, email string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool {
		return b.Treatment == treatment && b.AppointDate == date && b.Email == email
	}), nil
}

func (r bookingRepo) Insert(_ context.Context, booking *models.Booking) (*models.WriteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.Treatment == booking.Treatment && b.AppointDate == booking.AppointDate && b.Email == booking.Email {
			return nil, repository.ErrDuplicate
		}
	}
	doc := *booking
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.s.bookings = append(r.s.bookings, doc)
	return inserted(doc.ID), nil
}

func (r bookingRepo) FindByID(_ context.Context, id string) (*models.Booking, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.ID == oid {
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r bookingRepo) MarkPaid(_ context.Context, id, transactionID string) (*models.WriteResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res := &models.WriteResult{Acknowledged: true}
	for i := range r.s.bookings {
		if r.s.bookings[i].ID == oid {
			res.MatchedCount = 1
			if !r.s.bookings[i].Paid || r.s.bookings[i].TransactionID != transactionID {
				res.ModifiedCount = 1
			}
			r.s.bookings[i].Paid = true
			r.s.bookings[i].TransactionID = transactionID
			break
		}
	}
	return res, nil
}

type userRepo struct{ s *Store }

func (r userRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) Insert(_ context.Context, user *models.User) (*models.WriteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc := *user
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.s.users = append(r.s.users, doc)
	return inserted(doc.ID), nil
}

func (r userRepo) List(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append(make([]models.User, 0, len(r.s.users)), r.s.users...), nil
}

func (r userRepo) PromoteToAdmin(_ context.Context, id string) (*models.WriteResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == oid {
			res := &models.WriteResult{Acknowledged: true, MatchedCount: 1}
			if r.s.users[i].Role != models.RoleAdmin {
				res.ModifiedCount = 1
			}
			r.s.users[i].Role = models.RoleAdmin
			return res, nil
		}
	}
	r.s.users = append(r.s.users, models.User{ID: oid, Role: models.RoleAdmin})
	return &models.WriteResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

type doctorRepo struct{ s *Store }

func (r doctorRepo) Insert(_ context.Context, doctor *models.Doctor) (*models.WriteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc := *doctor
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.s.doctors = append(r.s.doctors, doc)
	return inserted(doc.ID), nil
}

func (r doctorRepo) List(_ context.Context) ([]models.Doctor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append(make([]models.Doctor, 0, len(r.s.doctors)), r.s.doctors...), nil
}

func (r doctorRepo) Delete(_ context.Context, id string) (*models.WriteResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, d := range r.s.doctors {
		if d.ID == oid {
			r.s.doctors = append(r.s.doctors[:i], r.s.doctors[i+1:]...)
			return &models.WriteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.WriteResult{Acknowledged: true}, nil
}

type paymentRepo struct{ s *Store }

func (r paymentRepo) Insert(_ context.Context, payment *models.Payment) (*models.WriteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc := *payment
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.s.payments = append(r.s.payments, doc)
	return inserted(doc.ID), nil
}
