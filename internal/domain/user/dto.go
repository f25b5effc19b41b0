package user

import (
	"strings"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Username = strings.TrimSpace(r.Username)
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "Username is required",
		})
	} else if len(r.Username) < 3 || len(r.Username) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "Username must be 3-50 characters",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "Username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
