package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	aiProviders    = []string{"gemini", "anthropic", "openai"}
	emailProviders = []string{EmailProviderAuto, EmailProviderSendGrid, EmailProviderResend}
	logLevels      = []string{"debug", "info", "warn", "error"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Adapter credentials are optional: a missing key degrades that adapter only.
func (c *Config) Validate() error {
	var errs []error

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}

	if !slices.Contains(aiProviders, c.AI.Provider) {
		errs = append(errs, fmt.Errorf("ai.provider must be one of %v (got %q)", aiProviders, c.AI.Provider))
	}

	if !slices.Contains(emailProviders, c.Email.Provider) {
		errs = append(errs, fmt.Errorf("email.provider must be one of %v (got %q)", emailProviders, c.Email.Provider))
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns))
	}

	if c.Worker.Enabled {
		if c.Worker.BatchSize <= 0 {
			errs = append(errs, fmt.Errorf("worker.batch_size must be > 0 (got %d)", c.Worker.BatchSize))
		}
		if c.Worker.MaxAttempts <= 0 {
			errs = append(errs, fmt.Errorf("worker.max_attempts must be > 0 (got %d)", c.Worker.MaxAttempts))
		}
		if c.Worker.PollInterval <= 0 {
			errs = append(errs, fmt.Errorf("worker.poll_interval must be > 0 (got %v)", c.Worker.PollInterval))
		}
	}

	return errors.Join(errs...)
}
