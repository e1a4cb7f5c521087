package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"CHARTKIT_HOST", "CHARTKIT_PORT", "CHARTKIT_INSECURE_ALLOW_REMOTE",
	"CHARTKIT_LOG_LEVEL", "CHARTKIT_LOG_FILE", "CHARTKIT_LOCALE",
	"CHARTKIT_CURRENCY", "CHARTKIT_CONTRAST_TARGET",
}

// clearEnv unsets every CHARTKIT_ variable and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	saved := make(map[string]string)
	for _, key := range envVars {
		if val, ok := os.LookupEnv(key); ok {
			saved[key] = val
		}
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range envVars {
			if val, ok := saved[key]; ok {
				os.Setenv(key, val)
			} else {
				os.Unsetenv(key)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	cfg := Load(filepath.Join(t.TempDir(), "missing"))

	assert.Equal(t, DefaultServiceHost, cfg.ServiceHost)
	assert.Equal(t, DefaultServicePort, cfg.ServicePort)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, DefaultCurrency, cfg.Currency)
	assert.Equal(t, DefaultContrastTarget, cfg.ContrastTarget)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "chartkit")
	content := "CHARTKIT_PORT=9100\nCHARTKIT_LOCALE=de-DE\nCHARTKIT_CURRENCY=EUR\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	cfg := Load(file)
	assert.Equal(t, 9100, cfg.ServicePort)
	assert.Equal(t, "de-DE", cfg.Locale)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, DefaultServiceHost, cfg.ServiceHost)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "chartkit")
	require.NoError(t, os.WriteFile(file, []byte("CHARTKIT_PORT=9100\n"), 0o600))
	os.Setenv("CHARTKIT_PORT", "9200")

	cfg := Load(file)
	assert.Equal(t, 9200, cfg.ServicePort)
}

func TestLoadWithEnvVars(t *testing.T) {
	clearEnv(t)

	os.Setenv("CHARTKIT_HOST", "0.0.0.0")
	os.Setenv("CHARTKIT_PORT", "9999")
	os.Setenv("CHARTKIT_INSECURE_ALLOW_REMOTE", "true")
	os.Setenv("CHARTKIT_LOG_LEVEL", "debug")
	os.Setenv("CHARTKIT_LOG_FILE", "/tmp/test.log")
	os.Setenv("CHARTKIT_LOCALE", "fr-FR")
	os.Setenv("CHARTKIT_CURRENCY", "CHF")
	os.Setenv("CHARTKIT_CONTRAST_TARGET", "7")

	cfg := Load(filepath.Join(t.TempDir(), "missing"))

	assert.Equal(t, "0.0.0.0", cfg.ServiceHost)
	assert.Equal(t, 9999, cfg.ServicePort)
	assert.True(t, cfg.InsecureAllowRemote)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/test.log", cfg.LogFile)
	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.Equal(t, "CHF", cfg.Currency)
	assert.Equal(t, 7.0, cfg.ContrastTarget)
}

func TestIsLocalhostAddr(t *testing.T) {
	tests := []struct {
		host     string
		expected bool
	}{
		{"127.0.0.1", true},
		{"localhost", true},
		{"::1", true},
		{"", true},

		{"0.0.0.0", false},
		{"192.168.1.1", false},
		{"10.0.0.1", false},
		{"example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.expected, isLocalhostAddr(tt.host))
		})
	}
}

func valid() Config {
	return Config{
		ServiceHost:    DefaultServiceHost,
		Locale:         DefaultLocale,
		Currency:       DefaultCurrency,
		ContrastTarget: DefaultContrastTarget,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"empty host is localhost", func(c *Config) { c.ServiceHost = "" }, ""},
		{"non-localhost without flag", func(c *Config) { c.ServiceHost = "0.0.0.0" }, "non-localhost"},
		{"non-localhost with flag", func(c *Config) {
			c.ServiceHost = "0.0.0.0"
			c.InsecureAllowRemote = true
		}, ""},
		{"zero contrast target", func(c *Config) { c.ContrastTarget = 0 }, "contrast target"},
		{"negative contrast target", func(c *Config) { c.ContrastTarget = -3 }, "contrast target"},
		{"bad locale", func(c *Config) { c.Locale = "not a locale!" }, "invalid locale"},
		{"bad currency", func(c *Config) { c.Currency = "DOLLARS" }, "invalid currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		setEnv   bool
		fallback bool
		expected bool
	}{
		{"True value", "true", true, false, true},
		{"False value", "false", true, true, false},
		{"1 value", "1", true, false, true},
		{"Invalid uses fallback", "maybe", true, true, true},
		{"Unset uses fallback", "", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_BOOL_VAR"
			os.Unsetenv(key)
			if tt.setEnv {
				os.Setenv(key, tt.envValue)
				defer os.Unsetenv(key)
			}
			assert.Equal(t, tt.expected, getEnvBool(key, tt.fallback))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		setEnv   bool
		fallback int
		expected int
	}{
		{"Valid int", "42", true, 0, 42},
		{"Negative int", "-10", true, 0, -10},
		{"Zero", "0", true, 100, 0},
		{"Invalid uses fallback", "not-a-number", true, 99, 99},
		{"Float uses fallback", "3.14", true, 5, 5},
		{"Empty uses fallback", "", true, 7, 7},
		{"Unset uses fallback", "", false, 123, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_INT_VAR"
			os.Unsetenv(key)
			if tt.setEnv {
				os.Setenv(key, tt.envValue)
				defer os.Unsetenv(key)
			}
			assert.Equal(t, tt.expected, getEnvInt(key, tt.fallback))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		setEnv   bool
		fallback float64
		expected float64
	}{
		{"Float", "3.14", true, 0, 3.14},
		{"Int", "7", true, 0, 7},
		{"Invalid uses fallback", "high", true, 4.5, 4.5},
		{"Empty uses fallback", "", true, 4.5, 4.5},
		{"Unset uses fallback", "", false, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_FLOAT_VAR"
			os.Unsetenv(key)
			if tt.setEnv {
				os.Setenv(key, tt.envValue)
				defer os.Unsetenv(key)
			}
			assert.Equal(t, tt.expected, getEnvFloat(key, tt.fallback))
		})
	}
}

func TestGetEnv(t *testing.T) {
	key := "TEST_STRING_VAR"
	os.Unsetenv(key)

	assert.Equal(t, "fallback_value", getEnv(key, "fallback_value"))

	os.Setenv(key, "actual_value")
	defer os.Unsetenv(key)
	assert.Equal(t, "actual_value", getEnv(key, "fallback_value"))
}
