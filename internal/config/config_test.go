package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "3001",
			Env:            "development",
			FrontendOrigin: "http://localhost:3000",
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
		},
		RateLimit: RateLimitConfig{Requests: 100, Window: 15 * time.Minute},
	}
}

func TestConfigValidation(t *testing.T) {
	config := validConfig()
	assert.NoError(t, config.Validate())

	invalidConfig := &Config{}
	assert.Error(t, invalidConfig.Validate())

	noRate := validConfig()
	noRate.RateLimit.Requests = 0
	assert.Error(t, noRate.Validate())
}

func TestValidationAllowsMissingSupabaseAndMail(t *testing.T) {
	// Absence of the hosted database or email provider settings degrades
	// silently, it must never fail startup.
	config := validConfig()
	config.Supabase = SupabaseConfig{}
	config.Mail = MailConfig{}

	assert.NoError(t, config.Validate())
	assert.False(t, config.SupabaseConfigured())
	assert.False(t, config.MailConfigured())
}

func TestSupabaseConfigured(t *testing.T) {
	config := validConfig()

	config.Supabase = SupabaseConfig{URL: "https://example.supabase.co"}
	assert.False(t, config.SupabaseConfigured(), "both settings are required")

	config.Supabase.ServiceKey = "service-role-key"
	assert.True(t, config.SupabaseConfigured())
}

func TestIsProduction(t *testing.T) {
	config := validConfig()
	assert.False(t, config.IsProduction())

	config.Server.Env = "production"
	assert.True(t, config.IsProduction())
}
