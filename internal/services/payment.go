package services

import (
	"context"
	"fmt"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/harentsoaR/doctors-portal/internal/repository"
	"github.com/harentsoaR/doctors-portal/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const paymentCurrency = "usd"

// PaymentProcessor creates payment intents with the external processor and
// returns the client secret the browser confirms the charge with.
type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type PaymentService struct {
	processor PaymentProcessor
	payments  repository.PaymentRepository
	bookings  repository.BookingRepository
	log       logrus.FieldLogger
}

func NewPaymentService(processor PaymentProcessor, payments repository.PaymentRepository, bookings repository.BookingRepository, log logrus.FieldLogger) *PaymentService {
	return &PaymentService{processor: processor, payments: payments, bookings: bookings, log: log}
}

// CreateIntent charges price (major units) in usd.
func (s *PaymentService) CreateIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	amount, err := utils.ToMinorUnits(price)
	if err != nil {
		return "", err
	}
	secret, err := s.processor.CreatePaymentIntent(ctx, amount, paymentCurrency)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return secret, nil
}

// RecordPayment stores the payment and marks its booking paid.
func (s *PaymentService) RecordPayment(ctx context.Context, payment models.Payment) (*models.WriteResult, error) {
	if _, err := repository.ParseID(payment.BookingID); err != nil {
		return nil, err
	}
	payment.ID = primitive.NilObjectID

	res, err := s.payments.Insert(ctx, &payment)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	updated, err := s.bookings.MarkPaid(ctx, payment.BookingID, payment.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("mark booking %s paid: %w", payment.BookingID, err)
	}
	if updated.MatchedCount == 0 {
		s.log.WithField("bookingId", payment.BookingID).Warn("payment recorded for unknown booking")
	}
	return res, nil
}
