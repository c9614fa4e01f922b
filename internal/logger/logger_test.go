package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "json", slog.LevelInfo)
	t.Cleanup(func() { Init("text", slog.LevelInfo) })

	Info("report rendered", "report", "shift", "rows", 12)
	Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "report rendered", entry["msg"])
	assert.Equal(t, "shift", entry["report"])
	assert.EqualValues(t, 12, entry["rows"])
}

func TestFailure_IncludesStack(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, "json", slog.LevelInfo)
	t.Cleanup(func() { Init("text", slog.LevelInfo) })

	Failure("query failed", errors.New("boom"), "report", "operator")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "operator", entry["report"])
	assert.Contains(t, entry["stack"], "TestFailure_IncludesStack")
}
