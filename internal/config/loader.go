package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the configuration from CONFIG_PATH (or ./config.yaml when it
// exists) with environment variables taking precedence, then normalizes and
// validates it. Without a file only the environment and defaults are used.
func Load() (*Config, error) {
	var cfg Config
	if err := read(os.Getenv("CONFIG_PATH"), &cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, cfg *Config) error {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			if err := cleanenv.ReadEnv(cfg); err != nil {
				return fmt.Errorf("config: read env: %w", err)
			}
			return nil
		}
		path = defaultConfigPath
	}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// normalize cleans values that are usually pasted from provider dashboards
// or bot chats.
func (c *Config) normalize() {
	for _, s := range []*string{
		&c.Auth.JWTSecret,
		&c.AI.APIKey,
		&c.Telegram.BotToken,
		&c.Email.APIKey,
		&c.Email.FromEmail,
	} {
		*s = strings.TrimSpace(*s)
	}
	c.AI.Provider = strings.ToLower(strings.TrimSpace(c.AI.Provider))
	c.Email.Provider = strings.ToLower(strings.TrimSpace(c.Email.Provider))
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Telegram.AdminURL = strings.TrimRight(c.Telegram.AdminURL, "/")
	c.Email.BaseURL = strings.TrimRight(c.Email.BaseURL, "/")
	c.AI.BaseURL = strings.TrimRight(c.AI.BaseURL, "/")
}
