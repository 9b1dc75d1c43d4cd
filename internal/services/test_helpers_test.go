package services_test

import (
	"time"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{Level: "error", Environment: "development"}); err != nil {
		panic(err)
	}
}

var (
	mentorIdentity = models.Identity{ID: "mentor-1", Email: "mentor@example.com", Role: models.RoleMentor}
	menteeIdentity = models.Identity{ID: "mentee-1", Email: "mentee@example.com", Role: models.RoleMentee}
)

func newTestTokenManager() *jwt.TokenManager {
	return jwt.NewTokenManager("test-secret", "mentorhub-api-test", 24*time.Hour)
}
