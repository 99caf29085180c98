package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	AI       AIConfig       `yaml:"ai"`
	Telegram TelegramConfig `yaml:"telegram"`
	Email    EmailConfig    `yaml:"email"`
	Worker   WorkerConfig   `yaml:"worker"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	Environment     string        `yaml:"environment"      env:"SERVER_ENVIRONMENT"      env-default:"development"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	AutoMigrate     bool          `yaml:"auto_migrate"     env:"SERVER_AUTO_MIGRATE"     env-default:"true"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds API token settings. An empty JWTSecret leaves the API open.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"docflow"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
}

// Enabled reports whether bearer token checks are enforced.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AIConfig holds the text-model provider settings.
type AIConfig struct {
	Provider string        `yaml:"provider" env:"AI_PROVIDER" env-default:"gemini"`
	APIKey   string        `yaml:"api_key"  env:"AI_API_KEY"`
	Model    string        `yaml:"model"    env:"AI_MODEL"`
	BaseURL  string        `yaml:"base_url" env:"AI_BASE_URL"`
	Timeout  time.Duration `yaml:"timeout"  env:"AI_TIMEOUT"  env-default:"45s"`
}

// Configured reports whether the AI provider has credentials.
func (c AIConfig) Configured() bool {
	return c.APIKey != ""
}

// TelegramConfig holds bot settings.
type TelegramConfig struct {
	BotToken    string        `yaml:"bot_token"    env:"TELEGRAM_BOT_TOKEN"`
	WebhookURL  string        `yaml:"webhook_url"  env:"TELEGRAM_WEBHOOK_URL"`
	APIEndpoint string        `yaml:"api_endpoint" env:"TELEGRAM_API_ENDPOINT" env-default:"https://api.telegram.org/bot%s/%s"`
	FileURL     string        `yaml:"file_url"     env:"TELEGRAM_FILE_URL"     env-default:"https://api.telegram.org/file/bot%s/%s"`
	AdminURL    string        `yaml:"admin_url"    env:"TELEGRAM_ADMIN_URL"    env-default:"/admin"`
	Timeout     time.Duration `yaml:"timeout"      env:"TELEGRAM_TIMEOUT"      env-default:"15s"`
}

// Configured reports whether the bot token is present.
func (c TelegramConfig) Configured() bool {
	return c.BotToken != ""
}

// EmailConfig holds transactional e-mail settings.
type EmailConfig struct {
	APIKey    string        `yaml:"api_key"    env:"EMAIL_API_KEY"`
	FromEmail string        `yaml:"from_email" env:"EMAIL_FROM"`
	FromName  string        `yaml:"from_name"  env:"EMAIL_FROM_NAME"  env-default:"Project Documentation"`
	Provider  string        `yaml:"provider"   env:"EMAIL_PROVIDER"   env-default:"auto"`
	BaseURL   string        `yaml:"base_url"   env:"EMAIL_BASE_URL"`
	Timeout   time.Duration `yaml:"timeout"    env:"EMAIL_TIMEOUT"    env-default:"20s"`
}

// Configured reports whether both the key and the sender address are present.
func (c EmailConfig) Configured() bool {
	return c.APIKey != "" && c.FromEmail != ""
}

// ResolvedProvider picks the e-mail provider. With "auto" the key prefix
// decides: "re_" selects Resend, anything else SendGrid.
func (c EmailConfig) ResolvedProvider() string {
	if c.Provider != "" && c.Provider != EmailProviderAuto {
		return c.Provider
	}
	if strings.HasPrefix(c.APIKey, "re_") {
		return EmailProviderResend
	}
	return EmailProviderSendGrid
}

// E-mail provider names.
const (
	EmailProviderAuto     = "auto"
	EmailProviderSendGrid = "sendgrid"
	EmailProviderResend   = "resend"
)

// WorkerConfig holds classification queue worker settings.
type WorkerConfig struct {
	Enabled      bool          `yaml:"enabled"       env:"WORKER_ENABLED"       env-default:"true"`
	PollInterval time.Duration `yaml:"poll_interval" env:"WORKER_POLL_INTERVAL" env-default:"2s"`
	BatchSize    int           `yaml:"batch_size"    env:"WORKER_BATCH_SIZE"    env-default:"10"`
	MaxAttempts  int           `yaml:"max_attempts"  env:"WORKER_MAX_ATTEMPTS"  env-default:"3"`
	// DoneRetention is how long finished tasks are kept before `queue prune`
	// removes them.
	DoneRetention time.Duration `yaml:"done_retention" env:"WORKER_DONE_RETENTION" env-default:"720h"`
}
