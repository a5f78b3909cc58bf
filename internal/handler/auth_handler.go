package handler

import (
	"fmt"
	"net/http"

	"movies-api/internal/domain"
	"movies-api/internal/service"
	"movies-api/internal/validator"
	"movies-api/pkg/apperror"
	"movies-api/pkg/response"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := validator.From[domain.RegisterRequest](r.Context())
	if !ok {
		response.HandleError(w, r, apperror.BadRequest("Invalid request body"))
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"message": fmt.Sprintf("%s successfully registered", user.Name),
		"user":    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := validator.From[domain.LoginRequest](r.Context())
	if !ok {
		response.HandleError(w, r, apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"message": fmt.Sprintf("%s successfully logged in", result.User.Name),
		"data":    result,
	})
}
