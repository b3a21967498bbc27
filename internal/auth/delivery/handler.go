package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager-api/internal/auth/domain"
	"taskmanager-api/internal/auth/dto"
	"taskmanager-api/internal/auth/usecase"
)

// AuthHandler handles session endpoints under /api-auth.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login exchanges credentials for a bearer token
// POST /api-auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.authUsecase.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: user})
}

// Logout acknowledges the end of a session. Tokens are stateless, so the
// client simply discards its copy.
// POST /api-auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated caller
// GET /api-auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, _ := c.Get("user")
	c.JSON(http.StatusOK, user)
}
