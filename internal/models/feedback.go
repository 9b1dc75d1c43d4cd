package models

import "time"

// Feedback is a rating a user left for a session. SessionID is recorded as
// given; it is not checked against the session store.
type Feedback struct {
	ID        string     `json:"id"`
	SessionID string     `json:"sessionId"`
	UserID    string     `json:"userId"`
	UserRole  Role       `json:"userRole"`
	Rating    int        `json:"rating"`
	Comments  string     `json:"comments"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CreateFeedbackRequest is the payload for POST /api/feedback. Rating bounds
// are enforced in the service so the response carries the canonical message.
type CreateFeedbackRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comments  string `json:"comments" binding:"max=5000"`
}

// UpdateFeedbackRequest is the payload for PUT /api/feedback/:id. Nil fields
// keep their current values.
type UpdateFeedbackRequest struct {
	Rating   *int    `json:"rating"`
	Comments *string `json:"comments" binding:"omitempty,max=5000"`
}

// FeedbackResponse wraps a single feedback entry with an outcome message
type FeedbackResponse struct {
	Message  string    `json:"message,omitempty"`
	Feedback *Feedback `json:"feedback"`
}

// FeedbacksResponse wraps a feedback listing
type FeedbacksResponse struct {
	Feedbacks []*Feedback `json:"feedbacks"`
}
