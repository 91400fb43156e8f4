package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return line
}

func TestNewLogger_MasksFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(buf, "pwstore", "info", nil, []string{" Password ", "stored_hash", ""})

	logger.Info("verify failed",
		"password", "hunter2",
		"stored_hash", "sha1:64000:18:salt:key",
		"payload", `{"password":"hunter2","user":"ada"}`,
		"detail", map[string]any{"Password": "x", "iterations": 64000},
		"iterations", 64000,
	)

	line := decodeLine(t, buf)
	assert.Equal(t, "***", line["password"])
	assert.Equal(t, "***", line["stored_hash"])
	assert.JSONEq(t, `{"password":"***","user":"ada"}`, line["payload"].(string))
	assert.Equal(t, map[string]any{"Password": "***", "iterations": float64(64000)}, line["detail"])
	assert.Equal(t, float64(64000), line["iterations"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Equal(t, "pwstore", line["service"])
	assert.Contains(t, line, "ts")
	assert.NotContains(t, buf.String(), "hunter2")
}

func TestNewLogger_CorrelationID(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(buf, "", "debug", nil, nil)

	ctx := WithCorrelationID(context.Background())
	logger.DebugContext(ctx, "hash created")

	line := decodeLine(t, buf)
	assert.Equal(t, GetCorrelationID(ctx), line["_cID"])
	assert.Len(t, line["_cID"], 36)
	assert.NotContains(t, line, "service")
}

func TestNewLogger_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(buf, "pwstore", "warn", nil, nil)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLevel(" ERROR "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
}

func TestGetCorrelationID_Missing(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.NotEqual(t,
		GetCorrelationID(WithCorrelationID(context.Background())),
		GetCorrelationID(WithCorrelationID(context.Background())),
	)
}

func TestNew_Disabled(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	ins, err := New(context.Background(), &Config{ServiceName: "pwstore", LogOutput: buf, MaskFields: []string{"password"}})
	require.NoError(t, err)

	_, span := ins.Tracer("test").Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	require.NoError(t, ins.Shutdown(context.Background()))

	slog.Info("configured", "password", "secret")
	assert.NotContains(t, buf.String(), "secret")
	assert.Contains(t, buf.String(), `"service":"pwstore"`)
}
