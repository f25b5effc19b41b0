package auth

import (
	"context"
	"errors"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/user"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{userRepo: userRepo, jwtService: jwtService}
}

// Register creates an admin account and logs it in.
func (s *AuthService) Register(ctx context.Context, req user.RegisterRequest) (user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return user.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.AuthResponse{}, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return user.AuthResponse{}, err
	}

	return s.issueToken(created)
}

// Login verifies the credentials and issues an access token. A missing user
// and a wrong password yield the same error.
func (s *AuthService) Login(ctx context.Context, req user.LoginRequest) (user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return user.AuthResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.AuthResponse{}, user.ErrInvalidCredentials
		}
		return user.AuthResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return user.AuthResponse{}, user.ErrInvalidCredentials
	}

	return s.issueToken(u)
}

// Logout revokes the presented access token. The token stays on the
// revocation list until the process restarts, which outlives its own expiry.
func (s *AuthService) Logout(token string) {
	s.jwtService.RevokeToken(token)
}

func (s *AuthService) issueToken(u user.User) (user.AuthResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID.String(), u.Username)
	if err != nil {
		return user.AuthResponse{}, err
	}

	return user.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToResponse(u),
	}, nil
}
