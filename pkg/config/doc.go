// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - Load reads the optional default .env file once, parses the environment
//     into a struct using its field tags, and caches the result per type.
//   - Parse does the same without caching or .env handling and accepts
//     options such as WithPrefix and WithEnvironment, which makes it the
//     right tool for tests and for components that need several instances.
//   - LoadEnv reads additional .env files into the process environment.
//   - MustLoad panics on failure for configuration that is required to start.
//
// # Usage
//
//	type RegistrationConfig struct {
//		SubmitDelay time.Duration `env:"REGISTRATION_SUBMIT_DELAY" envDefault:"3s"`
//		LogLevel    slog.Level    `env:"REGISTRATION_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg RegistrationConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig so callers can use
// errors.Is while the underlying env error remains available.
package config
