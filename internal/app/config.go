package app

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	envCurrency  = "SCHOOLBOOK_CURRENCY"
	envLogLevel  = "SCHOOLBOOK_LOG_LEVEL"
	envLogFormat = "SCHOOLBOOK_LOG_FORMAT"

	DefaultCurrency  = "HTG"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds runtime wiring options for building the registry.
type Config struct {
	Currency  string           // unit printed after monetary amounts, e.g. HTG
	LogLevel  string           // logrus level name
	LogFormat string           // "text" or "json"
	Now       func() time.Time // optional; defaults to time.Now
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Currency:  DefaultCurrency,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// LoadConfig reads the SCHOOLBOOK_* variables. Values from envFile are loaded
// first without overriding variables already set. An empty envFile means
// ".env" in the working directory, which may be absent.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, err
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	return Config{
		Currency:  getEnv(envCurrency, DefaultCurrency),
		LogLevel:  getEnv(envLogLevel, DefaultLogLevel),
		LogFormat: getEnv(envLogFormat, DefaultLogFormat),
	}, nil
}

// getEnv returns the trimmed value of key, or def when unset or blank.
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}
