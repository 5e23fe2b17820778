package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPoolWaitReport(t *testing.T) {
	t.Run("no waits", func(t *testing.T) {
		prev := sql.DBStats{WaitCount: 3, WaitDuration: time.Second}

		_, _, ok := poolWaitReport(prev, prev)
		assert.False(t, ok)
	})

	t.Run("short waits stay at debug", func(t *testing.T) {
		prev := sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond}
		cur := sql.DBStats{WaitCount: 3, WaitDuration: 11 * time.Millisecond}

		level, attrs, ok := poolWaitReport(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Equal(t, "waits", attrs[0].Key)
		assert.Equal(t, int64(2), attrs[0].Value.Int64())
		assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())
	})

	t.Run("long waits warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 1, WaitDuration: 80 * time.Millisecond}

		level, _, ok := poolWaitReport(sql.DBStats{}, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelWarn, level)
	})
}

func newCapturingGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(logger, cfg).(*gormSlogLogger), &buf
}

func fixedSQL() (string, int64) {
	return `SELECT * FROM "visitors" WHERE id = 'v-1'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is quiet", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)

		l.Trace(context.Background(), time.Now(), fixedSQL, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("failures are logged", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)

		l.Trace(context.Background(), time.Now(), fixedSQL, errors.New("connection reset"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "connection reset")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), fixedSQL, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		quiet, quietBuf := newCapturingGormLogger(false)
		quiet.Trace(context.Background(), time.Now(), fixedSQL, nil)
		assert.Empty(t, quietBuf.String())

		loud, loudBuf := newCapturingGormLogger(true)
		loud.Trace(context.Background(), time.Now(), fixedSQL, nil)
		assert.Contains(t, loudBuf.String(), `"msg":"GORM query"`)
	})

	t.Run("request logger wins", func(t *testing.T) {
		l, baseBuf := newCapturingGormLogger(false)

		var reqBuf bytes.Buffer
		reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-42"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), fixedSQL, errors.New("boom"))
		assert.Empty(t, baseBuf.String())
		assert.Contains(t, reqBuf.String(), `"request_id":"req-42"`)
	})
}
