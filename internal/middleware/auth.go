package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal/internal/services"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// AuthMiddleware binds the bearer's identity to the request. A missing
// header answers 404 and a bad token 403, as the existing clients expect.
func AuthMiddleware(gate *services.AccessGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := gate.Authenticate(c.GetHeader("Authorization"))
		if errors.Is(err, services.ErrMissingCredential) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "unauthorized access"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware. The role is looked up in
// the user registry on every request.
func AdminMiddleware(gate *services.AccessGate, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		err := gate.AuthorizeAdmin(c.Request.Context(), identity)
		if errors.Is(err, services.ErrNotAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		if err != nil {
			log.WithError(err).Error("admin check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) (services.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return services.Identity{}, false
	}
	identity, ok := v.(services.Identity)
	return identity, ok
}
