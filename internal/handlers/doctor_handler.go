package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		badRequest(c, err)
		return
	}
	doctor.ID = primitive.NilObjectID

	result, err := h.Doctors.Insert(c.Request.Context(), &doctor)
	if err != nil {
		h.respondError(c, err, "Failed to create doctor")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to retrieve doctors")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	result, err := h.Doctors.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to delete doctor")
		return
	}
	c.JSON(http.StatusOK, result)
}
