package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/semmap/pkg/logging"
)

func TestLoggerFunctions(t *testing.T) {
	// Save and restore the original logger and level
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("Default returns global logger", func(t *testing.T) {
		logger := logging.Default()
		assert.NotNil(t, logger)
	})

	t.Run("SetDefault sets global logger", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger := zerolog.New(&buf).Level(zerolog.InfoLevel)
		logging.SetDefault(newLogger)

		logging.Info().Msg("test with new default")
		assert.Contains(t, buf.String(), "test with new default")
	})

	t.Run("New creates JSON logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)
		logger.Info().Msg("json test")

		output := buf.String()
		assert.Contains(t, output, "json test")
		assert.Contains(t, output, `"level":"info"`)
	})

	t.Run("logging event functions", func(t *testing.T) {
		var buf bytes.Buffer
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logging.SetDefault(zerolog.New(&buf).Level(zerolog.DebugLevel))

		logging.Debug().Msg("debug")
		logging.Info().Msg("info")
		logging.Warn().Msg("warn")
		logging.Error().Msg("error")

		output := buf.String()
		assert.Contains(t, output, "debug")
		assert.Contains(t, output, "info")
		assert.Contains(t, output, "warn")
		assert.Contains(t, output, "error")
	})

	t.Run("Err adds error to event", func(t *testing.T) {
		var buf bytes.Buffer
		logging.SetDefault(zerolog.New(&buf).Level(zerolog.InfoLevel))

		logging.Err(assert.AnError).Msg("something failed")

		output := buf.String()
		assert.Contains(t, output, "something failed")
		assert.Contains(t, output, assert.AnError.Error())
	})

	t.Run("Nop discards everything", func(t *testing.T) {
		logging.Nop.Info().Msg("discarded")
		assert.Equal(t, zerolog.Disabled, logging.Nop.GetLevel())
	})
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Logger.Debug().Str("path", "src/lib.rs").Msg("message 1")
	tl.Logger.Info().Msg("message 2")

	assert.True(t, tl.Contains("message 1"))
	assert.True(t, tl.Contains("message 2"))
	assert.True(t, tl.Contains("src/lib.rs"))
	assert.False(t, tl.Contains("never logged"))

	assert.Contains(t, tl.Output(), `"level":"debug"`)
	assert.Len(t, tl.Lines(), 2)
}

func TestTestLoggerEmpty(t *testing.T) {
	tl := logging.NewTestLogger(t)

	assert.Empty(t, tl.Output())
	assert.Empty(t, tl.Lines())
}

func TestDisableLoggingForTest(t *testing.T) {
	var buf bytes.Buffer
	originalLogger := *logging.Default()
	defer logging.SetDefault(originalLogger)

	logging.SetDefault(zerolog.New(&buf).Level(zerolog.InfoLevel))

	t.Run("suppresses output", func(t *testing.T) {
		logging.DisableLoggingForTest(t)
		logging.Info().Msg("silenced")
		assert.Empty(t, buf.String())
	})

	// The subtest's cleanup has run, so the logger set above is back.
	logging.Info().Msg("restored")
	assert.True(t, strings.Contains(buf.String(), "restored"))
}
