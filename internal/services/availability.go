package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/harentsoaR/doctors-portal/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingNotifier is told about each newly stored booking.
type BookingNotifier interface {
	BookingConfirmed(booking *models.Booking)
}

// AvailabilityService computes remaining slots per treatment and guards
// against a second booking for the same treatment, date and email.
type AvailabilityService struct {
	options  repository.AppointmentOptionRepository
	bookings repository.BookingRepository
	notifier BookingNotifier
	log      logrus.FieldLogger
}

func NewAvailabilityService(
	options repository.AppointmentOptionRepository,
	bookings repository.BookingRepository,
	notifier BookingNotifier,
	log logrus.FieldLogger,
) *AvailabilityService {
	return &AvailabilityService{options: options, bookings: bookings, notifier: notifier, log: log}
}

// ListAvailability returns every option with the slots already booked on
// date removed. An empty date returns the templates untouched.
func (s *AvailabilityService) ListAvailability(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	opts, err := s.options.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointment options: %w", err)
	}
	if date == "" {
		return opts, nil
	}

	booked, err := s.bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", date, err)
	}

	bookedByTreatment := make(map[string]map[string]struct{})
	for _, b := range booked {
		slots, ok := bookedByTreatment[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			bookedByTreatment[b.Treatment] = slots
		}
		slots[b.SelectedSlot] = struct{}{}
	}

	for i := range opts {
		opts[i].Slots = RemainingSlots(opts[i].Slots, bookedByTreatment[opts[i].Name])
	}
	return opts, nil
}

// RemainingSlots keeps the template order and drops any slot present in
// booked, however many bookings hold it. The result is never nil.
func RemainingSlots(slots []string, booked map[string]struct{}) []string {
	remaining := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, taken := booked[slot]; !taken {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

// CreateBooking stores candidate unless the same email already booked this
// treatment on this date. A rejection is a soft result, not an error.
// The slot itself is not checked: two emails may hold the same slot.
func (s *AvailabilityService) CreateBooking(ctx context.Context, candidate models.Booking) (*models.BookingResult, error) {
	existing, err := s.bookings.FindExisting(ctx, candidate.Treatment, candidate.AppointDate, candidate.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing bookings: %w", err)
	}
	if len(existing) > 0 {
		return duplicateBooking(candidate.AppointDate), nil
	}

	candidate.ID = primitive.NewObjectID()
	candidate.Paid = false
	candidate.TransactionID = ""

	res, err := s.bookings.Insert(ctx, &candidate)
	if errors.Is(err, repository.ErrDuplicate) {
		// lost a race with a concurrent request for the same triple
		s.log.WithFields(logrus.Fields{
			"treatment": candidate.Treatment,
			"date":      candidate.AppointDate,
		}).Info("duplicate booking rejected by unique index")
		return duplicateBooking(candidate.AppointDate), nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if s.notifier != nil {
		s.notifier.BookingConfirmed(&candidate)
	}
	return &models.BookingResult{Acknowledged: res.Acknowledged, InsertedID: res.InsertedID}, nil
}

func duplicateBooking(date string) *models.BookingResult {
	return &models.BookingResult{
		Acknowledged: false,
		Message:      fmt.Sprintf("you already have a booking on %s", date),
	}
}
