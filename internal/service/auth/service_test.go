package auth

import (
	"context"
	"testing"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/user"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if _, ok := f.users[u.Username]; ok {
		return user.User{}, user.ErrUsernameExists
	}
	u.ID = uuid.New()
	f.users[u.Username] = u
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestAuthService() *AuthService {
	return NewAuthService(newFakeUserRepo(), jwt.NewJWTService("test-secret-key", "1h"))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService()

	result, err := service.Register(ctx, user.RegisterRequest{
		Username: "admin",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Greater(t, result.ExpiresAt, int64(0))
	assert.Equal(t, "admin", result.User.Username)
	assert.NotEmpty(t, result.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService()

	cases := []struct {
		name string
		req  user.RegisterRequest
	}{
		{"empty username", user.RegisterRequest{Password: "supersecret1"}},
		{"short username", user.RegisterRequest{Username: "ab", Password: "supersecret1"}},
		{"short password", user.RegisterRequest{Username: "admin", Password: "short"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := service.Register(ctx, c.req)
			assert.Error(t, err)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService()

	_, err := service.Register(ctx, user.RegisterRequest{Username: "admin", Password: "supersecret1"})
	require.NoError(t, err)

	_, err = service.Register(ctx, user.RegisterRequest{Username: "admin", Password: "othersecret2"})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService()

	_, err := service.Register(ctx, user.RegisterRequest{Username: "admin", Password: "supersecret1"})
	require.NoError(t, err)

	result, err := service.Login(ctx, user.LoginRequest{Username: "admin", Password: "supersecret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "admin", result.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService()

	_, err := service.Register(ctx, user.RegisterRequest{Username: "admin", Password: "supersecret1"})
	require.NoError(t, err)

	_, err = service.Login(ctx, user.LoginRequest{Username: "admin", Password: "wrongpassword"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	service := NewAuthService(newFakeUserRepo(), jwtService)

	result, err := service.Register(ctx, user.RegisterRequest{
		Username: "admin",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	require.False(t, jwtService.IsTokenRevoked(result.Token))

	service.Logout(result.Token)
	assert.True(t, jwtService.IsTokenRevoked(result.Token))
}

func TestLoginUnknownUserSameError(t *testing.T) {
	ctx := context.Background()
	service := newTestAuthService()

	// Unknown user and wrong password are indistinguishable to the caller.
	_, err := service.Login(ctx, user.LoginRequest{Username: "ghost", Password: "whatever123"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
