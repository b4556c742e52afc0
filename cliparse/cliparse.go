package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Supported log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

const defaultEnvFile = ".env"

type Config struct {
	Host            string        `env:"HOST" env-default:"0.0.0.0"`
	Port            int           `env:"PORT" env-default:"5000"`
	DatabaseType    string        `env:"DATABASE_TYPE" env-default:"sqlite"`
	DatabaseURL     string        `env:"DATABASE_URL" env-default:"toilettalk.db"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	LogFormat       string        `env:"LOG_FORMAT" env-default:"text"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" env-default:"*" env-separator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Addr returns the listen address in host:port form
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SlogLevel converts LogLevel to a slog.Level. Call after ParseFlags has
// validated the config.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseFlags builds the config from defaults, the environment (optionally
// seeded from a .env file) and CLI flags, in increasing order of precedence.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("toilettalk", flag.ContinueOnError)

	// Network config
	fs.StringVar(&cfg.Host, "host", cfg.Host, "Bind address")
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")

	// Storage
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadEnvFile loads ENV_FILE (default .env) without overriding variables that
// are already set. A missing default file is fine; a missing explicit one is not.
func loadEnvFile() error {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	switch c.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return fmt.Errorf("unsupported database type %q (use sqlite or postgres)", c.DatabaseType)
	}

	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q (use text or json)", c.LogFormat)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	return nil
}
