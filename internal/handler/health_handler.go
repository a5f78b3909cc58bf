package handler

import (
	"net/http"

	"movies-api/internal/logger"
	"movies-api/pkg/response"
)

const apiVersion = "1.0.0"

func Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"status":  "healthy",
		"service": logger.ServiceName,
	})
}

func Root(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{
		"message": "Movies API",
		"version": apiVersion,
		"endpoints": map[string]string{
			"/auth/register": "POST",
			"/auth/login":    "POST",
			"/movies":        "GET, POST (protected)",
			"/movies/{id}":   "GET, PUT (protected), DELETE (protected)",
			"/users/me":      "GET (protected)",
		},
	})
}
