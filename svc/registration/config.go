package registration

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formflow/pkg/config"
	"github.com/dmitrymomot/formflow/pkg/logger"
)

// Config holds the environment driven settings of a Coordinator.
type Config struct {
	SubmitDelay    time.Duration `env:"REGISTRATION_SUBMIT_DELAY" envDefault:"3s"`
	SnapshotBuffer int           `env:"REGISTRATION_SNAPSHOT_BUFFER" envDefault:"16"`
	// Empty level and format keep the defaults of Environment.
	LogLevel    string `env:"REGISTRATION_LOG_LEVEL"`
	LogFormat   string `env:"REGISTRATION_LOG_FORMAT"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"REGISTRATION_SERVICE_NAME" envDefault:"registration"`
}

// DefaultConfig returns the values used when no environment is set.
func DefaultConfig() Config {
	return Config{
		SubmitDelay:    3 * time.Second,
		SnapshotBuffer: 16,
		Environment:    logger.EnvDevelopment,
		ServiceName:    "registration",
	}
}

// LoadConfig reads Config from the process environment and the optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds the logger described by c. Extra options are applied last.
func (c Config) Logger(opts ...logger.Option) (*slog.Logger, error) {
	base := []logger.Option{logger.WithEnvironment(c.Environment, c.ServiceName)}

	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, fmt.Errorf("registration: log level %q: %w", c.LogLevel, err)
		}
		base = append(base, logger.WithLevel(level))
	}
	if c.LogFormat != "" {
		format, err := logger.ParseFormat(c.LogFormat)
		if err != nil {
			return nil, err
		}
		base = append(base, logger.WithFormat(format))
	}

	return logger.New(append(base, opts...)...), nil
}

// NewFromConfig creates a Coordinator configured from cfg with a logger
// built by cfg.Logger. Options passed in opts override cfg.
func NewFromConfig(cfg Config, submitter Submitter, opts ...Option) (*Coordinator, error) {
	log, err := cfg.Logger()
	if err != nil {
		return nil, err
	}
	base := []Option{WithConfig(cfg), WithLogger(log)}
	return New(submitter, append(base, opts...)...), nil
}
