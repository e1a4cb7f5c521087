package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	// Logging defaults
	ConstantLogDir      = "/var/log"
	ConstantLogFilename = "chartkit.log"
	ConstantLogFile     = ConstantLogDir + "/" + ConstantLogFilename

	ConstantConfigFilename = "/etc/default/chartkit"

	// Service defaults
	DefaultServicePort         = 8246
	DefaultServiceHost         = "127.0.0.1"
	DefaultInsecureAllowRemote = false

	// logger
	DefaultLogLevel = "info"
	DefaultLogFile  = ConstantLogFile

	// Formatting defaults
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"

	// DefaultContrastTarget is the ratio auto-adjusted colors must reach
	// (WCAG AA for normal text).
	DefaultContrastTarget = 4.5
)

type Config struct {
	ServiceHost         string
	ServicePort         int
	InsecureAllowRemote bool
	LogLevel            string
	LogFile             string
	Locale              string
	Currency            string
	ContrastTarget      float64
}

func (c *Config) Validate() error {
	if !(c.ContrastTarget > 0) || math.IsInf(c.ContrastTarget, 0) {
		return fmt.Errorf("contrast target must be a positive ratio, got %v", c.ContrastTarget)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("invalid currency %q: %w", c.Currency, err)
	}

	if !isLocalhostAddr(c.ServiceHost) {
		if !c.InsecureAllowRemote {
			return fmt.Errorf(`binding to non-localhost address %q exposes an unauthenticated API.

This service has no authentication. Binding to a network-accessible address
allows any host on the network to use it.

If you understand the risks and want to proceed anyway, use:
    --insecure-allow-remote
    or set CHARTKIT_INSECURE_ALLOW_REMOTE=true`, c.ServiceHost)
		}
		fmt.Fprintf(os.Stderr, "WARNING: Binding to %q - unauthenticated API will be network-accessible!\n", c.ServiceHost)
	}
	return nil
}

func isLocalhostAddr(host string) bool {
	switch host {
	case "127.0.0.1", "localhost", "::1", "":
		return true
	}
	return false
}

func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		ServiceHost:         getEnv("CHARTKIT_HOST", DefaultServiceHost),
		ServicePort:         getEnvInt("CHARTKIT_PORT", DefaultServicePort),
		InsecureAllowRemote: getEnvBool("CHARTKIT_INSECURE_ALLOW_REMOTE", DefaultInsecureAllowRemote),
		LogLevel:            getEnv("CHARTKIT_LOG_LEVEL", DefaultLogLevel),
		LogFile:             getEnv("CHARTKIT_LOG_FILE", DefaultLogFile),
		Locale:              getEnv("CHARTKIT_LOCALE", DefaultLocale),
		Currency:            getEnv("CHARTKIT_CURRENCY", DefaultCurrency),
		ContrastTarget:      getEnvFloat("CHARTKIT_CONTRAST_TARGET", DefaultContrastTarget),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
