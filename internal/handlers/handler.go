package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal/internal/repository"
	"github.com/harentsoaR/doctors-portal/internal/services"
	"github.com/sirupsen/logrus"
)

// Handler carries the shared store handles and services every route uses.
type Handler struct {
	Gate         *services.AccessGate
	Availability *services.AvailabilityService
	Payments     *services.PaymentService
	Options      repository.AppointmentOptionRepository
	Bookings     repository.BookingRepository
	Users        repository.UserRepository
	Doctors      repository.DoctorRepository
	Log          logrus.FieldLogger
}

func NewHandler(
	gate *services.AccessGate,
	availability *services.AvailabilityService,
	payments *services.PaymentService,
	options repository.AppointmentOptionRepository,
	bookings repository.BookingRepository,
	users repository.UserRepository,
	doctors repository.DoctorRepository,
	log logrus.FieldLogger,
) *Handler {
	return &Handler{
		Gate:         gate,
		Availability: availability,
		Payments:     payments,
		Options:      options,
		Bookings:     bookings,
		Users:        users,
		Doctors:      doctors,
		Log:          log,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "doctors server running")
}
