package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Mail      MailConfig      `mapstructure:"mail"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	Env            string        `mapstructure:"env"`
	FrontendOrigin string        `mapstructure:"frontend_origin"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

// SupabaseConfig holds the hosted database connection settings
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
	AnonKey    string `mapstructure:"anon_key"`
}

// MailConfig holds the transactional email provider settings
type MailConfig struct {
	ResendAPIKey string `mapstructure:"resend_api_key"`
	FromAddress  string `mapstructure:"from_address"`
	AdminAddress string `mapstructure:"admin_address"`
}

// RateLimitConfig holds the global request limiter settings
type RateLimitConfig struct {
	Requests int64         `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig loads configuration from environment variables and config file
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override config file
	viper.AutomaticEnv()

	// Bind environment variables
	bindEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.port", "3001")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.frontend_origin", "http://localhost:3000")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "15m")
}

// bindEnvVars binds environment variables to configuration keys
func bindEnvVars() {
	// Server
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.env", "APP_ENV")
	viper.BindEnv("server.frontend_origin", "FRONTEND_URL")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	// Supabase
	viper.BindEnv("supabase.url", "SUPABASE_URL")
	viper.BindEnv("supabase.service_key", "SUPABASE_SERVICE_ROLE_KEY")
	viper.BindEnv("supabase.anon_key", "SUPABASE_ANON_KEY")

	// Mail
	viper.BindEnv("mail.resend_api_key", "RESEND_API_KEY")
	viper.BindEnv("mail.from_address", "MAIL_FROM_ADDRESS")
	viper.BindEnv("mail.admin_address", "MAIL_ADMIN_ADDRESS")

	// Rate limiting
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
}

// Validate validates the configuration. Missing Supabase or Resend settings
// are not validation errors: the service degrades to in-memory storage and
// disabled notifications instead of refusing to start.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be greater than 0")
	}

	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit requests and window must be greater than 0")
	}

	return nil
}

// SupabaseConfigured reports whether both required hosted database settings
// are present.
func (c *Config) SupabaseConfigured() bool {
	return c.Supabase.URL != "" && c.Supabase.ServiceKey != ""
}

// MailConfigured reports whether the email provider credential is present.
func (c *Config) MailConfigured() bool {
	return c.Mail.ResendAPIKey != ""
}

// IsProduction reports whether the service runs with the production
// environment flag. Outside production, internal error responses include
// stack detail.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
