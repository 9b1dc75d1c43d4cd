package models

import "time"

// SessionStatus is a free-form lifecycle marker. The known values are below,
// but updates accept any non-empty string so new states can be introduced
// without a schema change.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Session is a scheduled mentor/mentee meeting. MentorID is always the
// creating user; only that mentor may update or delete the record.
type Session struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	MentorID      string        `json:"mentorId"`
	MenteeID      string        `json:"menteeId"`
	ScheduledDate time.Time     `json:"scheduledDate"`
	Status        SessionStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CreateSessionRequest is the payload for POST /api/sessions
type CreateSessionRequest struct {
	Title         string    `json:"title" binding:"required,max=255"`
	Description   string    `json:"description" binding:"required,max=5000"`
	MenteeID      string    `json:"menteeId" binding:"required"`
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
}

// UpdateSessionRequest is the payload for PUT /api/sessions/:id. Empty
// fields keep their current values.
type UpdateSessionRequest struct {
	Title         string     `json:"title" binding:"omitempty,max=255"`
	Description   string     `json:"description" binding:"omitempty,max=5000"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Status        string     `json:"status" binding:"omitempty,max=50"`
}

// SessionResponse wraps a single session with an outcome message
type SessionResponse struct {
	Message string   `json:"message,omitempty"`
	Session *Session `json:"session"`
}

// SessionsResponse wraps a session listing
type SessionsResponse struct {
	Sessions []*Session `json:"sessions"`
}
