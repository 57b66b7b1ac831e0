package logging_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/logging"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBHandlerPersistsErrorsOnly(t *testing.T) {
	db := testutil.NewDB(t)
	h := logging.NewDBHandler(db)
	t.Cleanup(h.Stop)

	logger := slog.New(h).With("request_id", "req-1")
	logger.Info("ignored")
	logger.Error("payment update failed",
		"user_id", "0b6f8f7e-0000-4000-8000-000000000001",
		"role", "LANDLORD",
		"action", "PATCH /api/rents/:id",
		"error", "boom",
		"latency_ms", 12.6,
		"payment_id", "p-1",
	)
	h.Flush()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "payment update failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "LANDLORD", entry.Role)
	assert.Equal(t, "boom", entry.Error)
	assert.Equal(t, 13, entry.LatencyMs)
	assert.JSONEq(t, `{"payment_id":"p-1"}`, string(entry.Extra))
}

func TestDBHandlerStopWritesPendingRecords(t *testing.T) {
	db := testutil.NewDB(t)
	h := logging.NewDBHandler(db)

	slog.New(h).Error("shutdown in progress", "request_id", "req-2")
	h.Stop()

	var count int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.NotPanics(t, h.Stop)
}

func TestCleanupHonoursRetention(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]models.SystemLog{
		{Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"},
		{Timestamp: now.AddDate(0, 0, -5), Level: "ERROR", Message: "recent"},
	}).Error)

	deleted, err := logging.Cleanup(db, now, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "recent", remaining[0].Message)
}
