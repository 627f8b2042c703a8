package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"tile": "7", "component": "board"})
	log.Info("tile revealed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "tile revealed", entry["message"])
	require.Equal(t, "7", entry["tile"])
	require.Equal(t, "board", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	log.WithFields(map[string]any{"pressed": true}).Debug("neither should this")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.Enabled(zerolog.DebugLevel))
	require.True(t, log.Enabled(zerolog.WarnLevel))
}

func TestLoggerDebugWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"pressed": true}).Debug("press transition")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, true, entry["pressed"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"op": "speaker.init"})
	log.Error(errors.New("no device"), "audio unavailable")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "audio unavailable", entry["message"])
	require.Equal(t, "speaker.init", entry["op"])
	require.Equal(t, "no device", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.WithFields(nil).Debug("ignored")
		nilLogger.Error(errors.New("x"), "ignored")
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	})

	nop := Nop()
	require.NotPanics(t, func() { nop.Warn("ignored") })
}
