package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		badRequest(c, err)
		return
	}
	// roles are only granted through MakeAdmin
	user.ID = primitive.NilObjectID
	user.Role = ""

	result, err := h.Users.Insert(c.Request.Context(), &user)
	if err != nil {
		h.respondError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	result, err := h.Users.PromoteToAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to update user role")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CheckAdmin(c *gin.Context) {
	isAdmin, err := h.Gate.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.respondError(c, err, "Failed to find user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
