package services

import (
	"fmt"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// MailSender is satisfied by *gomail.Dialer.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// NotificationService e-mails booking confirmations. A nil sender turns it
// into a no-op that only logs.
type NotificationService struct {
	sender MailSender
	from   string
	log    logrus.FieldLogger
}

func NewNotificationService(sender MailSender, from string, log logrus.FieldLogger) *NotificationService {
	return &NotificationService{sender: sender, from: from, log: log}
}

// NewSMTPNotificationService dials host:port with the given credentials.
func NewSMTPNotificationService(host string, port int, user, pass string, log logrus.FieldLogger) *NotificationService {
	return NewNotificationService(gomail.NewDialer(host, port, user, pass), user, log)
}

// BookingConfirmed sends the confirmation without blocking the request.
func (s *NotificationService) BookingConfirmed(booking *models.Booking) {
	if s.sender == nil {
		s.log.Debug("Email not sent: SMTP is not configured.")
		return
	}
	if booking.Email == "" {
		s.log.Info("Email not sent: booking has no email address.")
		return
	}
	msg := s.confirmationMessage(booking)
	go s.send(booking.Email, msg)
}

func (s *NotificationService) confirmationMessage(booking *models.Booking) *gomail.Message {
	patient := booking.Patient
	if patient == "" {
		patient = booking.Email
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", booking.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your appointment for %s is confirmed", booking.Treatment))
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hello %s,</p><p>Your <b>%s</b> appointment on <b>%s</b> at <b>%s</b> is booked.</p>",
		patient, booking.Treatment, booking.AppointDate, booking.SelectedSlot,
	))
	return m
}

func (s *NotificationService) send(to string, m *gomail.Message) {
	if err := s.sender.DialAndSend(m); err != nil {
		s.log.WithError(err).WithField("to", to).Error("Failed to send booking confirmation")
		return
	}
	s.log.WithField("to", to).Info("Sent booking confirmation")
}
