package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskmanager-api/internal/auth/domain"
	"taskmanager-api/internal/auth/usecase"
)

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := bearerUser(c, authUsecase)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// AuthOptional attaches the caller when a valid bearer token is present,
// but lets anonymous requests through. Used by the task list endpoints,
// which answer anonymous callers with an empty result set.
func AuthOptional(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := bearerUser(c, authUsecase); ok {
			c.Set("user", user)
			c.Set("userID", user.ID)
		}
		c.Next()
	}
}

func bearerUser(c *gin.Context, authUsecase usecase.AuthUsecase) (*domain.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	user, err := authUsecase.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return user, true
}
