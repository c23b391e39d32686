package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/donationDB/Donation-Web/internal/metrics"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var info, errOnly bytes.Buffer
	log := slog.New(NewMultiHandler(
		NewJSONHandler(&info, "info"),
		Sink{Name: "errors", Handler: NewJSONHandler(&errOnly, "error")},
	)).With("operation", "programs.list")

	log.Info("listed")
	log.Error("failed", "error", "boom")

	require.Equal(t, 2, bytes.Count(info.Bytes(), []byte("\n")))
	require.Equal(t, 1, bytes.Count(errOnly.Bytes(), []byte("\n")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(errOnly.Bytes(), &rec))
	require.Equal(t, "programs.list", rec["operation"])
	require.Equal(t, "boom", rec["error"])
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

type failingSink struct{}

func (failingSink) Enabled(context.Context, slog.Level) bool  { return true }
func (failingSink) Handle(context.Context, slog.Record) error { return errors.New("sink down") }
func (h failingSink) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h failingSink) WithGroup(string) slog.Handler           { return h }

func TestMultiHandler_SinkFailureIsCountedNotReturned(t *testing.T) {
	var out bytes.Buffer
	h := NewMultiHandler(NewJSONHandler(&out, "warn"), Sink{Name: "flaky", Handler: failingSink{}})
	counter := metrics.LogSinkFailures.WithLabelValues("flaky")
	before := counterValue(t, counter)

	// below the process level the record only reaches the sink
	require.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	rec := slog.NewRecord(time.Now(), slog.LevelError, "sweep failed", 0)
	require.NoError(t, h.WithGroup("job").Handle(context.Background(), rec))

	require.Equal(t, before+1, counterValue(t, counter))
	require.Contains(t, out.String(), "sweep failed")
}

func TestDBHandler_BatchesErrorsAndFlushesOnStop(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))

	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO "system_logs"`).WillReturnResult(sqlmock.NewResult(0, 2))

	h := NewDBHandler(db)
	require.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	require.True(t, h.Enabled(context.Background(), slog.LevelError))

	log := slog.New(h).With("request_id", "req-1")
	log.Error("sweep step failed", "operation", "maintenance.sweep", "step", "purge", "error", "timeout")
	log.Error("category insert failed", "operation", "categories.create")
	require.Equal(t, 2, h.Pending())

	h.Stop()
	h.Stop()
	require.Equal(t, 0, h.Pending())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRetention_Prune(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`DELETE FROM "system_logs" WHERE timestamp < \$1`).
		WithArgs(now.AddDate(0, 0, -7)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	r := NewRetention(db, 7)
	r.now = func() time.Time { return now }
	require.NoError(t, r.Prune(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())

	require.Equal(t, 30, NewRetention(db, 0).days)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, parseLevel("warning"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
}
