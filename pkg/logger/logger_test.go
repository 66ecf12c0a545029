package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Log
	Log = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { Log = prev })
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestFromContext_TagsRequestID(t *testing.T) {
	buf := captureJSON(t)

	ctx := WithRequestID(context.Background(), "req-42")
	FromContext(ctx).Info("payment recorded")

	entry := decodeLine(t, buf)
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-7")
	sql := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("errors are logged with the request id", func(t *testing.T) {
		buf := captureJSON(t)
		NewGormLogger(gormlogger.Warn, time.Second).Trace(ctx, time.Now(), sql, assert.AnError)

		entry := decodeLine(t, buf)
		assert.Equal(t, "SQL Error", entry["msg"])
		assert.Equal(t, "req-7", entry["request_id"])
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		buf := captureJSON(t)
		NewGormLogger(gormlogger.Warn, time.Second).Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
		assert.Zero(t, buf.Len())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		buf := captureJSON(t)
		NewGormLogger(gormlogger.Warn, time.Millisecond).Trace(ctx, time.Now().Add(-time.Second), sql, nil)

		entry := decodeLine(t, buf)
		assert.Equal(t, "Slow SQL", entry["msg"])
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		buf := captureJSON(t)
		NewGormLogger(gormlogger.Silent, 0).Trace(ctx, time.Now(), sql, assert.AnError)
		assert.Zero(t, buf.Len())
	})
}
