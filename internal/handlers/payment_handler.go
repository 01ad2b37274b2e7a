package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/shopspring/decimal"
)

type paymentIntentRequest struct {
	Price decimal.Decimal `json:"price"`
}

func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	secret, err := h.Payments.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.respondError(c, err, "Failed to create payment intent")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment stores a completed payment and flags its booking as paid.
func (h *Handler) RecordPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.Payments.RecordPayment(c.Request.Context(), payment)
	if err != nil {
		h.respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, result)
}
