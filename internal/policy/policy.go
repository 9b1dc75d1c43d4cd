// Package policy centralizes the role- and ownership-based authorization
// rules gating every protected resource operation. Handlers and services
// never compare role strings directly; they name an operation and let the
// rule table decide.
package policy

import (
	"fmt"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
)

// Operation names a guarded resource operation
type Operation string

const (
	SessionCreate  Operation = "session.create"
	SessionView    Operation = "session.view"
	SessionUpdate  Operation = "session.update"
	SessionDelete  Operation = "session.delete"
	FeedbackUpdate Operation = "feedback.update"
	FeedbackDelete Operation = "feedback.delete"
)

var (
	// ErrRoleDenied means the caller's role may never perform the operation
	ErrRoleDenied = fmt.Errorf("role not permitted for operation: %w", apperrors.ErrAccessDenied)

	// ErrNotOwner means the caller is authenticated but does not hold the
	// ownership relation the operation requires
	ErrNotOwner = fmt.Errorf("requester does not own the resource: %w", apperrors.ErrAccessDenied)
)

// rule describes who may perform an operation: an optional required role and
// an optional ownership predicate evaluated against the target resource.
type rule struct {
	role models.Role
	owns func(models.Identity, any) bool
}

var rules = map[Operation]rule{
	SessionCreate:  {role: models.RoleMentor},
	SessionView:    {owns: sessionParticipant},
	SessionUpdate:  {owns: sessionMentor},
	SessionDelete:  {owns: sessionMentor},
	FeedbackUpdate: {owns: feedbackSubmitter},
	FeedbackDelete: {owns: feedbackSubmitter},
}

// Check evaluates the rule for op against the caller and the target
// resource. The role requirement is checked before ownership; the first
// failing check wins. A nil resource is only valid for rules without an
// ownership predicate.
func Check(op Operation, identity models.Identity, resource any) error {
	r, ok := rules[op]
	if !ok {
		return apperrors.InternalError(fmt.Sprintf("no policy rule for operation %q", op))
	}
	if r.role != "" && identity.Role != r.role {
		return ErrRoleDenied
	}
	if r.owns != nil && !r.owns(identity, resource) {
		return ErrNotOwner
	}
	return nil
}

func sessionParticipant(identity models.Identity, resource any) bool {
	session, ok := resource.(*models.Session)
	return ok && (session.MentorID == identity.ID || session.MenteeID == identity.ID)
}

func sessionMentor(identity models.Identity, resource any) bool {
	session, ok := resource.(*models.Session)
	return ok && session.MentorID == identity.ID
}

func feedbackSubmitter(identity models.Identity, resource any) bool {
	feedback, ok := resource.(*models.Feedback)
	return ok && feedback.UserID == identity.ID
}
