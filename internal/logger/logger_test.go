package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logEntry parses the single JSON entry accumulated in buf.
func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := logEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	require.NotNil(t, NewLogger("settings-role"))

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFieldsIndependently(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.Output(&buf)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", logEntry(t, &buf)["role"])
}

func TestFromContext(t *testing.T) {
	t.Run("bare context still yields a usable logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("returns the attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()

		l := FromContext(zl.WithContext(context.Background()))
		require.NotNil(t, l)
		l.Info().Msg("from context")

		assert.Equal(t, "ctx-value", logEntry(t, &buf)["ctx-key"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)
	l.Info().Msg("from request")

	assert.Equal(t, "req-value", logEntry(t, &buf)["req-key"])
}
