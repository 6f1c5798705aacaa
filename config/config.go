package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task store
	Storage  StorageConfig
	Mongo    MongoConfig
	Postgres PostgresConfig

	// Middleware
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	Driver string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled       bool
	PerMin        int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Load loads configuration using Viper.
// A .env file, when present, is loaded into the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/todo/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/todo/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Task store
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(viper.GetString("storage.driver")))

	cfg.Mongo.URI = viper.GetString("mongo.uri")
	if mongoURI := viper.GetString("mongo_uri"); mongoURI != "" {
		cfg.Mongo.URI = mongoURI
	}
	cfg.Mongo.Database = viper.GetString("mongo.database")
	cfg.Mongo.Collection = viper.GetString("mongo.collection")
	cfg.Mongo.Timeout = viper.GetDuration("mongo.timeout")

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if databaseURL := viper.GetString("database_url"); databaseURL != "" {
		cfg.Postgres.DSN = databaseURL
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")

	// Middleware
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.RedisAddr = viper.GetString("rate_limit.redis_addr")
	cfg.RateLimit.RedisPassword = viper.GetString("rate_limit.redis_password")
	cfg.RateLimit.RedisDB = viper.GetInt("rate_limit.redis_db")

	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Metrics.Path = viper.GetString("metrics.path")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the chosen storage driver has what it needs to connect.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory:
	case StorageMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("storage driver %q requires mongo.uri or MONGO_URI", c.Storage.Driver)
		}
		if c.Mongo.Database == "" || c.Mongo.Collection == "" {
			return fmt.Errorf("storage driver %q requires mongo.database and mongo.collection", c.Storage.Driver)
		}
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("storage driver %q requires postgres.dsn or DATABASE_URL", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port %d", c.HTTPServer.Port)
	}
	if c.RateLimit.Enabled && c.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when rate limiting is enabled")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", StorageMemory)
	viper.SetDefault("mongo.database", "todo")
	viper.SetDefault("mongo.collection", "tasks")
	viper.SetDefault("mongo.timeout", "10s")
	viper.SetDefault("postgres.max_conns", 10)

	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:8081", "http://192.168.1.13:8081"})

	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.per_min", 120)
	viper.SetDefault("rate_limit.redis_db", 0)

	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.path", "/metrics")
}

// splitList accepts both a YAML list and a comma separated env value.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
