package docfill

import (
	"os"
	"strconv"
	"strings"
)

// Config contains the engine's tunable settings.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error).
	LogLevel string
	// StrictFill makes Fill return an IncompleteFillError instead of
	// leaving unmapped placeholders in the output.
	StrictFill bool
	// MaxClassifyParagraphs is how many leading paragraphs the type
	// classifier inspects.
	MaxClassifyParagraphs int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:              "info",
		StrictFill:            false,
		MaxClassifyParagraphs: 20,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("DOCFILL_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}
	if val := os.Getenv("DOCFILL_STRICT_FILL"); val != "" {
		config.StrictFill = parseBool(val)
	}
	if val := os.Getenv("DOCFILL_MAX_CLASSIFY_PARAGRAPHS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			config.MaxClassifyParagraphs = n
		}
	}

	return config
}

func parseBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
