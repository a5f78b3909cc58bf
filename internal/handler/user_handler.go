package handler

import (
	"net/http"

	"movies-api/internal/middleware"
	"movies-api/internal/service"
	"movies-api/pkg/apperror"
	"movies-api/pkg/response"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		response.HandleError(w, r, apperror.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"message": "User fetched successfully",
		"user":    user,
	})
}
