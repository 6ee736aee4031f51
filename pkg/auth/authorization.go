package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const ownerKey = "owner"

// ErrInvalidToken is returned by verifiers for tokens they do not accept.
var ErrInvalidToken = errors.New("invalid token")

// Verifier turns a bearer token into the caller's owner key.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

func AuthMiddleware(verifier Verifier, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		idToken, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || idToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a bearer token"})
			c.Abort()
			return
		}

		owner, err := verifier.Verify(c, idToken)
		if err != nil {
			if !errors.Is(err, ErrInvalidToken) {
				logger.WithError(err).Error("could not verify token")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// Attach the owner key to the context
		c.Set(ownerKey, owner)

		c.Next()
	}
}

// Owner returns the owner key set by AuthMiddleware.
func Owner(c *gin.Context) string {
	return c.GetString(ownerKey)
}
