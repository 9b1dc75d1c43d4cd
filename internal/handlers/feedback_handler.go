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

// FeedbackHandler handles feedback-related HTTP requests
type FeedbackHandler struct {
	service services.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(service services.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Create handles POST /api/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	var req models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Feedback validation failed",
			zap.Any("details", ParseValidationErrors(err)))
		respondError(c, http.StatusBadRequest, "Session ID and rating are required.", err)
		return
	}

	feedback, err := h.service.Create(c.Request.Context(), identity, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRating) {
			respondError(c, http.StatusBadRequest, "Rating must be between 1 and 5.", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	c.JSON(http.StatusCreated, models.FeedbackResponse{
		Message:  "Feedback submitted successfully",
		Feedback: feedback,
	})
}

// ListBySession handles GET /api/feedback/session/:sessionId
func (h *FeedbackHandler) ListBySession(c *gin.Context) {
	feedbacks, err := h.service.ListBySession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		return
	}
	if feedbacks == nil {
		feedbacks = []*models.Feedback{}
	}

	c.JSON(http.StatusOK, models.FeedbacksResponse{Feedbacks: feedbacks})
}

// ListMine handles GET /api/feedback/user
func (h *FeedbackHandler) ListMine(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	feedbacks, err := h.service.ListMine(c.Request.Context(), identity)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		return
	}
	if feedbacks == nil {
		feedbacks = []*models.Feedback{}
	}

	c.JSON(http.StatusOK, models.FeedbacksResponse{Feedbacks: feedbacks})
}

// Update handles PUT /api/feedback/:id
func (h *FeedbackHandler) Update(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	var req models.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	feedback, err := h.service.Update(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFeedbackNotFound):
			respondError(c, http.StatusNotFound, "Feedback not found.", err)
		case errors.Is(err, policy.ErrNotOwner):
			respondError(c, http.StatusForbidden, "You can only update your own feedback.", err)
		case errors.Is(err, services.ErrInvalidRating):
			respondError(c, http.StatusBadRequest, "Rating must be between 1 and 5.", err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		}
		return
	}

	c.JSON(http.StatusOK, models.FeedbackResponse{
		Message:  "Feedback updated successfully",
		Feedback: feedback,
	})
}

// Delete handles DELETE /api/feedback/:id
func (h *FeedbackHandler) Delete(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, services.ErrFeedbackNotFound):
			respondError(c, http.StatusNotFound, "Feedback not found.", err)
		case errors.Is(err, policy.ErrNotOwner):
			respondError(c, http.StatusForbidden, "You can only delete your own feedback.", err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}
