package services

import (
	"io"
	"sync"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/sirupsen/logrus"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type recordingNotifier struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (n *recordingNotifier) BookingConfirmed(b *models.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bookings = append(n.bookings, *b)
}
