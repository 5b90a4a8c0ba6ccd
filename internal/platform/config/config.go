package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the server process.
type Config struct {
	Addr            string        `envconfig:"APP_ADDR" default:":8080"`
	Environment     string        `envconfig:"APP_ENV" default:"development"`
	ReadTimeout     time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`

	DatabaseURL string        `envconfig:"DATABASE_URL"`
	JWTSecret   string        `envconfig:"JWT_SECRET"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"168h"`

	FrontendDir string `envconfig:"FRONTEND_DIR" default:"frontend/dist"`
	CORSOrigin  string `envconfig:"CORS_ORIGIN" default:"*"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"true"`
	RunSeed       bool   `envconfig:"RUN_SEED" default:"true"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`

	SeedAdminName     string `envconfig:"SEED_ADMIN_NAME" default:"Administrator"`
	SeedAdminEmail    string `envconfig:"SEED_ADMIN_EMAIL"`
	SeedAdminPassword string `envconfig:"SEED_ADMIN_PASSWORD"`

	MaxBodyBytes       int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`
	RateLimitPerMinute int   `envconfig:"RATE_LIMIT_PER_MINUTE" default:"300"`
	LoginRatePerMinute int   `envconfig:"LOGIN_RATE_PER_MINUTE" default:"10"`

	EmailEnabled bool   `envconfig:"EMAIL_ENABLED" default:"false"`
	EmailFrom    string `envconfig:"EMAIL_FROM" default:"no-reply@example.com"`
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPUseTLS   bool   `envconfig:"SMTP_USE_TLS" default:"true"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
