package handler

import (
	"net/http"

	"movies-api/internal/domain"
	"movies-api/internal/middleware"
	"movies-api/internal/service"
	"movies-api/internal/validator"
	"movies-api/pkg/apperror"
	"movies-api/pkg/response"
)

type MovieHandler struct {
	movieService *service.MovieService
}

func NewMovieHandler(movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	query, _ := validator.From[validator.PaginationQuery](r.Context())

	page := domain.Pagination{}
	if query.Skip != nil {
		page.Skip = *query.Skip
	}
	if query.Limit != nil {
		page.Limit = *query.Limit
	}

	movies, err := h.movieService.GetAll(r.Context(), page)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	filtered := make([]domain.MovieSummary, 0, len(movies))
	for _, movie := range movies {
		filtered = append(filtered, movie.Summary())
	}

	response.Success(w, map[string]interface{}{
		"message":        "Movies fetched successfully",
		"length":         len(movies),
		"filteredMovies": filtered,
		"data":           movies,
	})
}

func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, ok := validator.From[validator.MovieIDParams](r.Context())
	if !ok {
		response.HandleError(w, r, apperror.BadRequest("Invalid movie id"))
		return
	}

	movie, err := h.movieService.GetByID(r.Context(), params.ID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"message":       "Movie fetched successfully",
		"filteredMovie": movie.Detail(),
	})
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := validator.From[domain.MovieRequest](r.Context())
	if !ok {
		response.HandleError(w, r, apperror.BadRequest("Invalid request body"))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		response.HandleError(w, r, apperror.Wrap(apperror.KindValidation, "Validation failed", err))
		return
	}

	movie, err := h.movieService.CreateMovie(r.Context(), middleware.GetUserID(r), input)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, map[string]interface{}{
		"message": "Movie created successfully",
		"data":    movie,
	})
}

func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	params, ok := validator.From[validator.MovieIDParams](r.Context())
	if !ok {
		response.HandleError(w, r, apperror.BadRequest("Invalid movie id"))
		return
	}

	req, ok := validator.From[domain.MovieRequest](r.Context())
	if !ok {
		response.HandleError(w, r, apperror.BadRequest("Invalid request body"))
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		response.HandleError(w, r, apperror.Wrap(apperror.KindValidation, "Validation failed", err))
		return
	}

	movie, err := h.movieService.UpdateMovie(r.Context(), params.ID, middleware.GetUserID(r), patch)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"message": "Movie updated successfully",
		"updates": req,
		"movie":   movie,
	})
}

func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	params, ok := validator.From[validator.MovieIDParams](r.Context())
	if !ok {
		response.HandleError(w, r, apperror.BadRequest("Invalid movie id"))
		return
	}

	if err := h.movieService.DeleteMovie(r.Context(), params.ID, middleware.GetUserID(r)); err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.NoContent(w)
}
