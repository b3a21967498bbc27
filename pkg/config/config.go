package config

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	JWTSecret string `env:"JWT_SECRET, default=change-me-in-production"`

	// JWTAccessExpiry is how long an issued access token stays valid.
	JWTAccessExpiry time.Duration `env:"JWT_ACCESS_EXPIRY, default=24h"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	// Driver selects the backing store: "postgres" or "sqlite".
	Driver     string `env:"DB_DRIVER,    default=sqlite"`
	URL        string `env:"DATABASE_URL, default=postgres://localhost:5432/taskmanager"`
	SQLitePath string `env:"SQLITE_PATH,  default=taskmanager.db"`
}

// Load reads configuration from the environment, with a .env file applied
// first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
