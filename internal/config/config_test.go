package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "Valid development config",
			config: Config{
				Env:       "development",
				Port:      "8460",
				JWTSecret: "your-secret-key-change-in-production",
			},
			expectError: false,
		},
		{
			name: "Missing port",
			config: Config{
				Env:       "development",
				JWTSecret: "some-secret",
			},
			expectError: true,
		},
		{
			name: "Missing JWT secret",
			config: Config{
				Env:  "development",
				Port: "8460",
			},
			expectError: true,
		},
		{
			name: "Production with default JWT secret",
			config: Config{
				Env:        "production",
				Port:       "8460",
				JWTSecret:  "your-secret-key-change-in-production",
				DBPassword: "strong-password",
			},
			expectError: true,
		},
		{
			name: "Production with short JWT secret",
			config: Config{
				Env:        "production",
				Port:       "8460",
				JWTSecret:  "too-short",
				DBPassword: "strong-password",
			},
			expectError: true,
		},
		{
			name: "Production with default DB password",
			config: Config{
				Env:        "prod",
				Port:       "8460",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "password",
			},
			expectError: true,
		},
		{
			name: "Valid production config",
			config: Config{
				Env:        "production",
				Port:       "8460",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "strong-password",
				DBSSLMode:  "require",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "test")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8460", c.Port)
	assert.Equal(t, "inkwell", c.DBName)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, "test", c.Env)
	assert.False(t, c.TracingEnabled)
}
