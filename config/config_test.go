package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPServer.Port != 5000 {
		t.Errorf("expected port 5000, got %d", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %s", cfg.HTTPServer.ShutdownTimeout)
	}
	if cfg.Storage.Driver != StorageMemory {
		t.Errorf("expected memory driver, got %q", cfg.Storage.Driver)
	}
	want := []string{"http://localhost:8081", "http://192.168.1.13:8081"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Errorf("expected default origins %v, got %v", want, cfg.CORS.AllowedOrigins)
	}
	if cfg.Mongo.Database != "todo" || cfg.Mongo.Collection != "tasks" {
		t.Errorf("unexpected mongo defaults: %+v", cfg.Mongo)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://todo@localhost/todo")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Storage.Driver != StoragePostgres {
		t.Errorf("expected postgres driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Postgres.DSN != "postgres://todo@localhost/todo" {
		t.Errorf("expected DATABASE_URL to win, got %q", cfg.Postgres.DSN)
	}
	if cfg.HTTPServer.Port != 7000 {
		t.Errorf("expected PORT to win, got %d", cfg.HTTPServer.Port)
	}
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Errorf("expected %v, got %v", want, cfg.CORS.AllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			HTTPServer: HTTPServerConfig{Port: 5000},
			Storage:    StorageConfig{Driver: StorageMemory},
			Mongo:      MongoConfig{Database: "todo", Collection: "tasks"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Memory is valid", func(c *Config) {}, false},
		{"Unknown driver", func(c *Config) { c.Storage.Driver = "sqlite" }, true},
		{"Mongo without uri", func(c *Config) { c.Storage.Driver = StorageMongo }, true},
		{"Mongo with uri", func(c *Config) {
			c.Storage.Driver = StorageMongo
			c.Mongo.URI = "mongodb://localhost:27017"
		}, false},
		{"Postgres without dsn", func(c *Config) { c.Storage.Driver = StoragePostgres }, true},
		{"Bad port", func(c *Config) { c.HTTPServer.Port = 0 }, true},
		{"Rate limit without budget", func(c *Config) { c.RateLimit.Enabled = true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
