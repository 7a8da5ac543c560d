package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/repairtrack/backend/internal/logging"
	"github.com/repairtrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLogDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	return db
}

func TestPGHandlerOnlyAcceptsErrors(t *testing.T) {
	t.Parallel()

	h := logging.NewPGHandler(newLogDB(t))
	defer h.Stop()

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPGHandlerPersistsRecords(t *testing.T) {
	t.Parallel()

	db := newLogDB(t)
	h := logging.NewPGHandler(db)

	log := slog.New(h)
	log.Error("approve failed", "action", "approve_report", "error", "insert rejected", "attempt", 2)

	// Stop signals the flush loop to drain the buffer.
	h.Stop()

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.SystemLog{}).Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)

	var entry models.SystemLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "approve failed", entry.Message)
	assert.Equal(t, "approve_report", entry.Action)
	assert.Equal(t, "insert rejected", entry.Error)
	assert.Contains(t, string(entry.Extra), "attempt")
}

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	t.Parallel()

	db := newLogDB(t)
	pg := logging.NewPGHandler(db)
	multi := logging.NewMultiHandler(
		slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pg,
	)

	log := slog.New(multi)
	log.Info("listing reports")
	log.Error("listing failed", "error", "backend unavailable")
	pg.Stop()

	// Only the ERROR record reaches the database handler.
	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.SystemLog{}).Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
