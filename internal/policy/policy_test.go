package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/policy"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
)

var (
	mentor      = models.Identity{ID: "mentor-1", Email: "mentor@example.com", Role: models.RoleMentor}
	otherMentor = models.Identity{ID: "mentor-2", Email: "other@example.com", Role: models.RoleMentor}
	mentee      = models.Identity{ID: "mentee-1", Email: "mentee@example.com", Role: models.RoleMentee}

	session = &models.Session{ID: "s1", MentorID: "mentor-1", MenteeID: "mentee-1"}
)

func TestCheck_SessionCreate(t *testing.T) {
	assert.NoError(t, policy.Check(policy.SessionCreate, mentor, nil))

	err := policy.Check(policy.SessionCreate, mentee, nil)
	assert.ErrorIs(t, err, policy.ErrRoleDenied)
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
}

func TestCheck_SessionView(t *testing.T) {
	tests := []struct {
		name     string
		identity models.Identity
		wantErr  error
	}{
		{"mentor participant", mentor, nil},
		{"mentee participant", mentee, nil},
		{"unrelated mentor", otherMentor, policy.ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Check(policy.SessionView, tt.identity, session)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheck_SessionMutationIsMentorOnly(t *testing.T) {
	for _, op := range []policy.Operation{policy.SessionUpdate, policy.SessionDelete} {
		assert.NoError(t, policy.Check(op, mentor, session))

		// The session's own mentee may not mutate it either
		assert.ErrorIs(t, policy.Check(op, mentee, session), policy.ErrNotOwner)
		assert.ErrorIs(t, policy.Check(op, otherMentor, session), policy.ErrNotOwner)
	}
}

func TestCheck_FeedbackOwnership(t *testing.T) {
	feedback := &models.Feedback{ID: "f1", SessionID: "s1", UserID: "mentee-1"}

	for _, op := range []policy.Operation{policy.FeedbackUpdate, policy.FeedbackDelete} {
		assert.NoError(t, policy.Check(op, mentee, feedback))
		assert.ErrorIs(t, policy.Check(op, mentor, feedback), policy.ErrNotOwner)
	}
}

func TestCheck_UnknownOperation(t *testing.T) {
	err := policy.Check(policy.Operation("session.publish"), mentor, session)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestCheck_NilResourceFailsOwnership(t *testing.T) {
	assert.ErrorIs(t, policy.Check(policy.SessionView, mentor, nil), policy.ErrNotOwner)
}
