package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin account for the management surfaces. Attendance marking
// itself is unauthenticated; devices post straight to the mark endpoint.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
