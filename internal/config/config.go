package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverCouch = "couch"
	DriverMongo = "mongo"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port string
	Host string
	Env  string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	MongoURI string
}

// CouchURL is the CouchDB endpoint including credentials.
func (d DatabaseConfig) CouchURL() string {
	return fmt.Sprintf("http://%s:%s@%s:%s", d.User, d.Password, d.Host, d.Port)
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	godotenv.Load()

	jwtExp, err := time.ParseDuration(getEnv("JWT_EXPIRATION", "48h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION: %w", err)
	}
	if jwtExp <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION: must be positive, got %s", jwtExp)
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverCouch))
	if driver != DriverCouch && driver != DriverMongo {
		return nil, fmt.Errorf("invalid DB_DRIVER %q: expected %q or %q", driver, DriverCouch, DriverMongo)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:   driver,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5984"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "movies"),
			MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		},
		JWT: JWTConfig{
			// No default: a missing secret surfaces as a 500 on first use.
			Secret:     getEnv("JWT_SECRET", ""),
			Expiration: jwtExp,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnvAsList("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnvAsList("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	var values []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
