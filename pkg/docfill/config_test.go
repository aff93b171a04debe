package docfill

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.Equal(t, "info", config.LogLevel)
	require.False(t, config.StrictFill)
	require.Equal(t, 20, config.MaxClassifyParagraphs)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("DOCFILL_LOG_LEVEL", "debug")
	t.Setenv("DOCFILL_STRICT_FILL", "true")
	t.Setenv("DOCFILL_MAX_CLASSIFY_PARAGRAPHS", "5")

	config := ConfigFromEnvironment()
	require.Equal(t, "debug", config.LogLevel)
	require.True(t, config.StrictFill)
	require.Equal(t, 5, config.MaxClassifyParagraphs)
}

func TestConfigFromEnvironmentIgnoresInvalidValues(t *testing.T) {
	t.Setenv("DOCFILL_STRICT_FILL", "maybe")
	t.Setenv("DOCFILL_MAX_CLASSIFY_PARAGRAPHS", "zero")

	config := ConfigFromEnvironment()
	require.False(t, config.StrictFill)
	require.Equal(t, 20, config.MaxClassifyParagraphs)
}

func TestConfigFromEnvironmentRejectsNonPositiveLimit(t *testing.T) {
	t.Setenv("DOCFILL_MAX_CLASSIFY_PARAGRAPHS", "-3")
	config := ConfigFromEnvironment()
	require.Equal(t, 20, config.MaxClassifyParagraphs)
}

func TestParseBool(t *testing.T) {
	for _, truthy := range []string{"1", "true", "TRUE", "yes", "on", " Yes "} {
		require.True(t, parseBool(truthy), "value %q", truthy)
	}
	for _, falsy := range []string{"0", "false", "no", "off", "", "garbage"} {
		require.False(t, parseBool(falsy), "value %q", falsy)
	}
}
