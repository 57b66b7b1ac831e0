package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"gorm.io/gorm"
)

// StartCleanup runs a daily goroutine that deletes system_logs older than
// retentionDays. It returns when done is closed.
func StartCleanup(db *gorm.DB, retentionDays int, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := Cleanup(db, time.Now(), retentionDays)
				if err != nil {
					slog.Error("log cleanup failed", "error", err, "action", "log_cleanup")
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}

// Cleanup deletes system_logs recorded more than retentionDays before now.
func Cleanup(db *gorm.DB, now time.Time, retentionDays int) (int64, error) {
	cutoff := now.UTC().AddDate(0, 0, -retentionDays)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}
