package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal/internal/middleware"
	"github.com/harentsoaR/doctors-portal/internal/models"
)

// GetBookings returns the caller's own bookings; ?email must match the token.
func (h *Handler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	identity, ok := middleware.CurrentIdentity(c)
	if !ok || email != identity.Email {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}

	bookings, err := h.Bookings.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.Availability.CreateBooking(c.Request.Context(), candidate)
	if err != nil {
		h.respondError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookingForPayment loads the booking the payment page is about to charge.
func (h *Handler) GetBookingForPayment(c *gin.Context) {
	booking, err := h.Bookings.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to retrieve booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}
