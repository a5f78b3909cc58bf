package middleware

import (
	"net/http"

	"movies-api/internal/config"

	"github.com/go-chi/cors"
)

func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: cfg.AllowedMethods,
		AllowedHeaders: cfg.AllowedHeaders,
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}
