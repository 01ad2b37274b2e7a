package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAppointmentOptions lists treatments with the slots still free on ?date=.
func (h *Handler) GetAppointmentOptions(c *gin.Context) {
	opts, err := h.Availability.ListAvailability(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.respondError(c, err, "Failed to retrieve appointment options")
		return
	}
	c.JSON(http.StatusOK, opts)
}

func (h *Handler) GetSpecialties(c *gin.Context) {
	specialties, err := h.Options.ListSpecialties(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to retrieve specialties")
		return
	}
	c.JSON(http.StatusOK, specialties)
}
