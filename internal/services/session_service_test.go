package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/policy"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

func scheduledSession(id, mentorID, menteeID string) *models.Session {
	now := time.Now().UTC()
	return &models.Session{
		ID:            id,
		Title:         "Intro call",
		Description:   "First meeting",
		MentorID:      mentorID,
		MenteeID:      menteeID,
		ScheduledDate: now.Add(48 * time.Hour),
		Status:        models.SessionScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestSessionService_Create_MentorOnly(t *testing.T) {
	mockSessions := new(MockSessionStore)
	service := services.NewSessionService(mockSessions)
	ctx := context.Background()

	req := &models.CreateSessionRequest{
		Title:         "Career planning",
		Description:   "Quarterly goals review",
		MenteeID:      "mentee-1",
		ScheduledDate: time.Now().UTC().Add(72 * time.Hour),
	}

	mockSessions.On("Create", ctx, mock.AnythingOfType("*models.Session")).Return(nil).Once()

	session, err := service.Create(ctx, mentorIdentity, req)
	assert.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, mentorIdentity.ID, session.MentorID)
	assert.Equal(t, "mentee-1", session.MenteeID)
	assert.Equal(t, models.SessionScheduled, session.Status)

	// A mentee is always refused, whoever the mentee id names
	denied, err := service.Create(ctx, menteeIdentity, req)
	assert.Nil(t, denied)
	assert.ErrorIs(t, err, policy.ErrRoleDenied)

	mockSessions.AssertExpectations(t)
	mockSessions.AssertNumberOfCalls(t, "Create", 1)
}

func TestSessionService_List_FiltersByRole(t *testing.T) {
	mockSessions := new(MockSessionStore)
	service := services.NewSessionService(mockSessions)
	ctx := context.Background()

	asMentor := []*models.Session{scheduledSession("s1", mentorIdentity.ID, "mentee-9")}
	asMentee := []*models.Session{scheduledSession("s2", "mentor-9", menteeIdentity.ID)}

	mockSessions.On("ListByMentor", ctx, mentorIdentity.ID).Return(asMentor, nil).Once()
	mockSessions.On("ListByMentee", ctx, menteeIdentity.ID).Return(asMentee, nil).Once()

	got, err := service.List(ctx, mentorIdentity)
	assert.NoError(t, err)
	assert.Equal(t, asMentor, got)

	got, err = service.List(ctx, menteeIdentity)
	assert.NoError(t, err)
	assert.Equal(t, asMentee, got)

	mockSessions.AssertExpectations(t)
}

func TestSessionService_Get_ParticipantsOnly(t *testing.T) {
	mockSessions := new(MockSessionStore)
	service := services.NewSessionService(mockSessions)
	ctx := context.Background()

	session := scheduledSession("s1", mentorIdentity.ID, menteeIdentity.ID)
	mockSessions.On("GetByID", ctx, "s1").Return(session, nil)

	got, err := service.Get(ctx, mentorIdentity, "s1")
	assert.NoError(t, err)
	assert.Equal(t, session, got)

	got, err = service.Get(ctx, menteeIdentity, "s1")
	assert.NoError(t, err)
	assert.Equal(t, session, got)

	outsider := models.Identity{ID: "other", Role: models.RoleMentor}
	_, err = service.Get(ctx, outsider, "s1")
	assert.ErrorIs(t, err, policy.ErrNotOwner)
}

func TestSessionService_Get_NotFound(t *testing.T) {
	mockSessions := new(MockSessionStore)
	service := services.NewSessionService(mockSessions)
	ctx := context.Background()

	mockSessions.On("GetByID", ctx, "missing").Return(nil, services.ErrSessionNotFound).Once()

	_, err := service.Get(ctx, mentorIdentity, "missing")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestSessionService_Update_MentorOwnerOnly(t *testing.T) {
	mockSessions := new(MockSessionStore)
	service := services.NewSessionService(mockSessions)
	ctx := context.Background()

	session := scheduledSession("s1", mentorIdentity.ID, menteeIdentity.ID)
	mockSessions.On("GetByID", ctx, "s1").Return(session, nil)
	mockSessions.On("Update", ctx, mock.AnythingOfType("*models.Session")).Return(nil).Once()

	req := &models.UpdateSessionRequest{Status: "completed"}

	// The session's own mentee cannot update it
	_, err := service.Update(ctx, menteeIdentity, "s1", req)
	assert.ErrorIs(t, err, policy.ErrNotOwner)

	updated, err := service.Update(ctx, mentorIdentity, "s1", req)
	assert.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, updated.Status)
	// Untouched fields keep their values
	assert.Equal(t, session.Title, updated.Title)
	assert.True(t, updated.UpdatedAt.After(session.UpdatedAt) || updated.UpdatedAt.Equal(session.UpdatedAt))

	mockSessions.AssertExpectations(t)
}

func TestSessionService_Delete_MentorOwnerOnly(t *testing.T) {
	mockSessions := new(MockSessionStore)
	service := services.NewSessionService(mockSessions)
	ctx := context.Background()

	session := scheduledSession("s1", mentorIdentity.ID, menteeIdentity.ID)
	mockSessions.On("GetByID", ctx, "s1").Return(session, nil)
	mockSessions.On("Delete", ctx, "s1").Return(nil).Once()

	assert.ErrorIs(t, service.Delete(ctx, menteeIdentity, "s1"), policy.ErrNotOwner)

	outsider := models.Identity{ID: "other", Role: models.RoleMentor}
	assert.ErrorIs(t, service.Delete(ctx, outsider, "s1"), policy.ErrNotOwner)

	assert.NoError(t, service.Delete(ctx, mentorIdentity, "s1"))
	mockSessions.AssertExpectations(t)
}
