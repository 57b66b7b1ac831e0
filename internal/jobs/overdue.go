// Package jobs runs periodic maintenance against the rental data.
package jobs

import (
	"log/slog"
	"time"
)

// OverdueMarker flips PENDING payments past their due date to OVERDUE.
type OverdueMarker interface {
	MarkOverdue(now time.Time) (int64, error)
}

// StartOverdueSweep marks overdue payments once at start and then every
// interval until done is closed. A non-positive interval disables it.
func StartOverdueSweep(marker OverdueMarker, interval time.Duration, done <-chan struct{}) {
	if interval <= 0 {
		return
	}
	go func() {
		sweep(marker, time.Now())

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				sweep(marker, now)
			case <-done:
				return
			}
		}
	}()
}

func sweep(marker OverdueMarker, now time.Time) {
	marked, err := marker.MarkOverdue(now)
	if err != nil {
		slog.Error("overdue sweep failed", "error", err, "action", "overdue_sweep")
		return
	}
	if marked > 0 {
		slog.Info("overdue sweep completed", "marked", marked)
	}
}
