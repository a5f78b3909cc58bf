package response

import (
	"encoding/json"
	"net/http"

	"movies-api/pkg/apperror"

	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Message: message})
}

// HandleError is the single place where errors become HTTP responses.
// Errors outside the apperror taxonomy are reported as a generic 500 and
// their cause only reaches the log.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	appErr, ok := apperror.From(err)
	if !ok {
		logger.Error().Err(err).Msg("unhandled error")
		Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("kind", appErr.Kind.String()).Msg("request failed")
		message := appErr.Message
		if message == "" {
			message = "Internal server error"
		}
		Error(w, http.StatusInternalServerError, message)
		return
	}

	logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	JSON(w, status, ErrorResponse{Message: appErr.Message, Details: appErr.Details})
}
