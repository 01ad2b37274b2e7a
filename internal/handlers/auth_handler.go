package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal/internal/services"
)

// IssueToken hands a registered email its access token.
func (h *Handler) IssueToken(c *gin.Context) {
	token, err := h.Gate.IssueCredential(c.Request.Context(), c.Query("email"))
	if errors.Is(err, services.ErrUnknownUser) {
		c.JSON(http.StatusForbidden, gin.H{"accesstoken": ""})
		return
	}
	if err != nil {
		h.respondError(c, err, "Could not generate token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accesstoken": token})
}
