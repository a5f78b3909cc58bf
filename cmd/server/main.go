package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movies-api/internal/config"
	"movies-api/internal/database"
	"movies-api/internal/handler"
	"movies-api/internal/logger"
	"movies-api/internal/router"
	"movies-api/internal/service"
	"movies-api/internal/validator"
	"movies-api/pkg/jwt"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	appLogger := logger.New(cfg.Logging.Level, cfg.Server.Env)
	log.Logger = appLogger

	if cfg.JWT.Secret == "" {
		appLogger.Warn().Msg("JWT_SECRET is not set; authenticated requests will fail")
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := database.Open(connectCtx, cfg.Database)
	cancelConnect()
	if err != nil {
		appLogger.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to open database")
	}

	tokens := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authService := service.NewAuthService(store.Users, tokens)
	userService := service.NewUserService(store.Users)
	movieService := service.NewMovieService(store.Movies, service.NewContentPolicy(service.DefaultBannedWords...))

	h := router.New(router.Dependencies{
		Logger:    appLogger,
		Tokens:    tokens,
		Validator: validator.New(),
		CORS:      cfg.CORS,
		Auth:      handler.NewAuthHandler(authService),
		Users:     handler.NewUserHandler(userService),
		Movies:    handler.NewMovieHandler(movieService),
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info().
			Str("addr", addr).
			Str("env", cfg.Server.Env).
			Str("driver", store.Driver).
			Msg("Starting Movies API")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("Server forced to shutdown")
	}

	if err := store.Close(ctx); err != nil {
		appLogger.Error().Err(err).Msg("Failed to close database")
	}

	appLogger.Info().Msg("Server stopped gracefully")
}
