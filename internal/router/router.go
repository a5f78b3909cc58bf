package router

import (
	"net/http"

	"movies-api/internal/config"
	"movies-api/internal/domain"
	"movies-api/internal/handler"
	"movies-api/internal/middleware"
	"movies-api/internal/validator"
	"movies-api/pkg/apperror"
	"movies-api/pkg/jwt"
	"movies-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Logger    zerolog.Logger
	Tokens    *jwt.TokenService
	Validator *validator.Validator
	CORS      config.CORSConfig

	Auth   *handler.AuthHandler
	Users  *handler.UserHandler
	Movies *handler.MovieHandler
}

type middlewareFunc = func(http.Handler) http.Handler

func chain(h http.HandlerFunc, mws ...middlewareFunc) http.Handler {
	var next http.Handler = h
	for i := len(mws) - 1; i >= 0; i-- {
		next = mws[i](next)
	}
	return next
}

// New maps every route to its validation chain and handler. Validation runs
// before authentication on protected routes.
func New(d Dependencies) http.Handler {
	v := d.Validator
	if v == nil {
		v = validator.New()
	}

	auth := middleware.AuthMiddleware(d.Tokens)
	movieID := validator.Middleware(v, validator.MovieID)
	pagination := validator.Middleware(v, validator.Pagination)
	movieBody := validator.Middleware(v, validator.JSONBody[domain.MovieRequest])
	registerBody := validator.Middleware(v, validator.JSONBody[domain.RegisterRequest])
	loginBody := validator.Middleware(v, validator.JSONBody[domain.LoginRequest])

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.HandleError(w, r, apperror.NotFound("Route not found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Handle("/auth/register", chain(d.Auth.Register, registerBody)).Methods(http.MethodPost)
	r.Handle("/auth/login", chain(d.Auth.Login, loginBody)).Methods(http.MethodPost)

	r.Handle("/movies", chain(d.Movies.List, pagination)).Methods(http.MethodGet)
	r.Handle("/movies/{id}", chain(d.Movies.Get, movieID)).Methods(http.MethodGet)
	r.Handle("/movies", chain(d.Movies.Create, movieBody, auth)).Methods(http.MethodPost)
	r.Handle("/movies/{id}", chain(d.Movies.Update, movieID, movieBody, auth)).Methods(http.MethodPut)
	r.Handle("/movies/{id}", chain(d.Movies.Delete, movieID, auth)).Methods(http.MethodDelete)

	r.Handle("/users/me", chain(d.Users.GetMe, auth)).Methods(http.MethodGet)

	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	r.HandleFunc("/", handler.Root).Methods(http.MethodGet)

	var h http.Handler = r
	h = middleware.RecoverMiddleware(h)
	h = middleware.CORS(d.CORS)(h)
	h = middleware.LoggerMiddleware(d.Logger)(h)
	return h
}
