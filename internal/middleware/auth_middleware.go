package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"movies-api/pkg/apperror"
	"movies-api/pkg/jwt"
	"movies-api/pkg/response"

	"github.com/rs/zerolog"
)

type contextKey string

const UserIDKey contextKey = "userID"

const bearerPrefix = "Bearer "

// AuthMiddleware admits requests carrying a valid bearer token and stores
// the token subject in the request context.
func AuthMiddleware(tokens *jwt.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.HandleError(w, r, apperror.Unauthorized("You must be logged in to access this resource."))
				return
			}

			if !strings.HasPrefix(authHeader, bearerPrefix) {
				response.HandleError(w, r, apperror.Unauthorized("Invalid token format"))
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
			if !jwt.HasThreeSegments(token) {
				response.HandleError(w, r, apperror.Unauthorized("Malformed token"))
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, jwt.ErrMissingSecret) {
					response.HandleError(w, r, apperror.Internal("Internal server error", err))
					return
				}
				response.HandleError(w, r, apperror.Wrap(apperror.KindUnauthorized, "Invalid token.", err))
				return
			}

			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("user_id", claims.UserID)
			})

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(r *http.Request) string {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
