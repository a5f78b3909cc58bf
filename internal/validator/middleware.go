package validator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"movies-api/pkg/apperror"
	"movies-api/pkg/response"

	"github.com/gorilla/mux"
)

// MovieIDParams are the path parameters of routes addressing one movie.
type MovieIDParams struct {
	ID string `param:"id" validate:"required,objectid"`
}

// PaginationQuery is the query string of the movie listing.
type PaginationQuery struct {
	Skip  *int `query:"skip" validate:"omitempty,min=0"`
	Limit *int `query:"limit" validate:"required_with=Skip,omitempty,min=1,max=100"`
}

// Binder extracts the value to validate from a request.
type Binder[T any] func(r *http.Request) (T, error)

type shapeKey[T any] struct{}

// Middleware binds and validates a T before the next handler runs. The
// validated value is available to later handlers through From.
func Middleware[T any](v *Validator, bind Binder[T]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			shape, err := bind(r)
			if err != nil {
				response.HandleError(w, r, err)
				return
			}

			if err := v.Struct(shape); err != nil {
				response.HandleError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), shapeKey[T]{}, shape)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// From returns the T validated earlier in the chain.
func From[T any](ctx context.Context) (T, bool) {
	shape, ok := ctx.Value(shapeKey[T]{}).(T)
	return shape, ok
}

// JSONBody decodes the request body into a T.
func JSONBody[T any](r *http.Request) (T, error) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return body, apperror.BadRequest("Request body is required")
		}
		return body, apperror.Wrap(apperror.KindBadRequest, "Invalid request body", err)
	}
	return body, nil
}

func MovieID(r *http.Request) (MovieIDParams, error) {
	return MovieIDParams{ID: mux.Vars(r)["id"]}, nil
}

func Pagination(r *http.Request) (PaginationQuery, error) {
	var q PaginationQuery
	var details []FieldError

	parse := func(name string) *int {
		raw, ok := r.URL.Query()[name]
		if !ok || len(raw) == 0 {
			return nil
		}
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			details = append(details, FieldError{Field: name, Message: name + " must be a number"})
			return nil
		}
		return &n
	}

	q.Skip = parse("skip")
	q.Limit = parse("limit")

	if len(details) > 0 {
		return q, apperror.Validation("Validation failed").WithDetails(details)
	}
	return q, nil
}
