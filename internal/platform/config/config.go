package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Addr               string        `env:"APP_ADDR, default=:8080"`
	Environment        string        `env:"APP_ENV, default=development"`
	LogLevel           string        `env:"LOG_LEVEL, default=info"`
	LogPretty          bool          `env:"LOG_PRETTY, default=false"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	MigrationsDir      string        `env:"MIGRATIONS_DIR, default=migrations"`
	RunMigrations      bool          `env:"RUN_MIGRATIONS, default=true"`
	JWTSecret          string        `env:"JWT_SECRET"`
	TokenTTL           time.Duration `env:"TOKEN_TTL, default=8h"`
	DataEncryptionKey  string        `env:"DATA_ENCRYPTION_KEY"`
	SeedDemoUsers      bool          `env:"SEED_DEMO_USERS, default=true"`
	MaxBodyBytes       int64         `env:"MAX_BODY_BYTES, default=1048576"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE, default=60"`
	MetricsEnabled     bool          `env:"METRICS_ENABLED, default=true"`
	SweepInterval      time.Duration `env:"REVOCATION_SWEEP_INTERVAL, default=10m"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads .env (if present) and then the process environment.
func Load(ctx context.Context) (Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, nil)
}

// LoadFrom processes cfg from lookuper, or the OS environment when nil.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	ec := &envconfig.Config{Target: &cfg}
	if lookuper != nil {
		ec.Lookuper = lookuper
	}
	if err := envconfig.ProcessWith(ctx, ec); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) Production() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if c.Production() {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required in production")
		}
		if c.SeedDemoUsers {
			return fmt.Errorf("SEED_DEMO_USERS must be disabled in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}

// ClientConfig configures the console client.
type ClientConfig struct {
	APIURL  string        `env:"WORKWISE_API_URL, default=http://localhost:8080/api/v1"`
	Home    string        `env:"WORKWISE_HOME"`
	Timeout time.Duration `env:"WORKWISE_TIMEOUT, default=15s"`

	LogLevel string `env:"LOG_LEVEL, default=warn"`
}

func LoadClient(ctx context.Context, lookuper envconfig.Lookuper) (ClientConfig, error) {
	if lookuper == nil {
		_ = godotenv.Load()
	}
	var cfg ClientConfig
	ec := &envconfig.Config{Target: &cfg}
	if lookuper != nil {
		ec.Lookuper = lookuper
	}
	if err := envconfig.ProcessWith(ctx, ec); err != nil {
		return ClientConfig{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Timeout <= 0 {
		return ClientConfig{}, fmt.Errorf("WORKWISE_TIMEOUT must be positive")
	}
	return cfg, nil
}
