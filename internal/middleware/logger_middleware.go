package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"movies-api/pkg/apperror"
	"movies-api/pkg/response"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-ID"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// LoggerMiddleware tags each request with an id, exposes a request scoped
// logger through zerolog.Ctx and logs the outcome once the handler returns.
func LoggerMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, requestID)

			reqLogger := logger.With().
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Logger()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			ctx := reqLogger.WithContext(r.Context())
			next.ServeHTTP(rw, r.WithContext(ctx))

			// Handlers may have added fields (user_id) to the context logger.
			log := zerolog.Ctx(ctx)
			event := log.Info()
			if rw.statusCode >= http.StatusInternalServerError {
				event = log.Error()
			} else if rw.statusCode >= http.StatusBadRequest {
				event = log.Warn()
			}

			event.
				Str("remote_addr", r.RemoteAddr).
				Int("status", rw.statusCode).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		})
	}
}

// RecoverMiddleware turns a handler panic into a 500 response.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				zerolog.Ctx(r.Context()).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")
				response.HandleError(w, r, apperror.New(apperror.KindInternal, "Internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
