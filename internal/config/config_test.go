package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Driver != DriverCouch {
		t.Errorf("Driver = %q, want %q", cfg.Database.Driver, DriverCouch)
	}
	if cfg.JWT.Expiration != 48*time.Hour {
		t.Errorf("Expiration = %v, want 48h", cfg.JWT.Expiration)
	}
	if cfg.JWT.Secret != "" {
		t.Errorf("Secret should have no default, got %q", cfg.JWT.Secret)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "Mongo")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Driver != DriverMongo {
		t.Errorf("Driver = %q, want %q", cfg.Database.Driver, DriverMongo)
	}
	if cfg.Database.MongoURI != "mongodb://db:27017" {
		t.Errorf("MongoURI = %q", cfg.Database.MongoURI)
	}
	if cfg.JWT.Secret != "s3cret" || cfg.JWT.Expiration != 2*time.Hour {
		t.Errorf("JWT = %+v", cfg.JWT)
	}
	want := []string{"http://a.test", "http://b.test"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.CORS.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.CORS.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad duration", "JWT_EXPIRATION", "forever"},
		{"negative duration", "JWT_EXPIRATION", "-1h"},
		{"unknown driver", "DB_DRIVER", "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("Load() expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestCouchURL(t *testing.T) {
	d := DatabaseConfig{User: "admin", Password: "pw", Host: "couch", Port: "5984"}
	if got := d.CouchURL(); got != "http://admin:pw@couch:5984" {
		t.Errorf("CouchURL() = %q", got)
	}
}
