package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

// AuthHandler handles registration, login and profile requests
type AuthHandler struct {
	service services.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Registration validation failed",
			zap.Any("details", ParseValidationErrors(err)))
		if failedOn(err, "oneof") {
			respondError(c, http.StatusBadRequest, `Role must be either "mentor" or "mentee".`, err)
			return
		}
		respondError(c, http.StatusBadRequest, "All fields (name, email, password, role) are required.", err)
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			respondError(c, http.StatusBadRequest, "User with this email already exists.", err)
		case errors.Is(err, apperrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, `Role must be either "mentor" or "mentee".`, err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		}
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		Message: "User registered successfully",
		User:    user,
		Token:   token,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Email and password are required.", err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Unknown email and wrong password answer identically
			respondError(c, http.StatusUnauthorized, "Invalid email or password.", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	})
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	user, err := h.service.Profile(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found.", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{User: user})
}
