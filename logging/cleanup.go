package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/userdb/models"
	"gorm.io/gorm"
)

// pruneErrorLogs deletes error_logs rows with a timestamp before cutoff and
// returns the number of rows removed.
func pruneErrorLogs(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("timestamp < ?", cutoff).Delete(&models.ErrorLog{})
	return result.RowsAffected, result.Error
}

// StartCleanup runs a goroutine that deletes error_logs rows older than the
// retention window, once per interval.
func StartCleanup(db *gorm.DB, retention, interval time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := pruneErrorLogs(db, time.Now().Add(-retention))
				if err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
