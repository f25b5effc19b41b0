package http

import (
	"encoding/json"
	"net/http"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/user"
	"github.com/facetrack-hrm/attendance-backend-go/internal/handler/http/response"
	authService "github.com/facetrack-hrm/attendance-backend-go/internal/service/auth"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService *authService.AuthService
}

func NewAuthHandler(service *authService.AuthService) AuthHandler {
	return &authHandlerImpl{authService: service}
}

// Register handles POST /auth/register
func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created", result)
}

// Login handles POST /auth/login
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout handles POST /auth/logout - revokes the presented token.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)
	if token == "" {
		response.HandleError(w, user.ErrInvalidToken)
		return
	}

	h.authService.Logout(token)
	response.SuccessWithMessage(w, "Logged out", nil)
}
