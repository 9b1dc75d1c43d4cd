package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/policy"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	service services.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service services.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{service: service}
}

// List handles GET /api/sessions
func (h *SessionHandler) List(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	sessions, err := h.service.List(c.Request.Context(), identity)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		return
	}
	if sessions == nil {
		sessions = []*models.Session{}
	}

	c.JSON(http.StatusOK, models.SessionsResponse{Sessions: sessions})
}

// Get handles GET /api/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	session, err := h.service.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, "Session not found.", err)
		case errors.Is(err, policy.ErrNotOwner):
			respondError(c, http.StatusForbidden, "Access denied.", err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		}
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{Session: session})
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Session validation failed",
			zap.Any("details", ParseValidationErrors(err)))
		respondError(c, http.StatusBadRequest, "Title, description, mentee ID, and scheduled date are required.", err)
		return
	}

	session, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		if errors.Is(err, policy.ErrRoleDenied) {
			respondError(c, http.StatusForbidden, "Only mentors can create sessions.", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	c.JSON(http.StatusCreated, models.SessionResponse{
		Message: "Session created successfully",
		Session: session,
	})
}

// Update handles PUT /api/sessions/:id
func (h *SessionHandler) Update(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	var req models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	session, err := h.service.Update(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, "Session not found.", err)
		case errors.Is(err, policy.ErrNotOwner):
			respondError(c, http.StatusForbidden, "Only the mentor can update the session.", err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		}
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{
		Message: "Session updated successfully",
		Session: session,
	})
}

// Delete handles DELETE /api/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			respondError(c, http.StatusNotFound, "Session not found.", err)
		case errors.Is(err, policy.ErrNotOwner):
			respondError(c, http.StatusForbidden, "Only the mentor can delete the session.", err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
}
