package logging

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/donationDB/Donation-Web/internal/models"
)

// Retention deletes system_logs rows older than a fixed number of days.
type Retention struct {
	db   *gorm.DB
	days int
	now  func() time.Time
}

func NewRetention(db *gorm.DB, days int) *Retention {
	if days <= 0 {
		days = 30
	}
	return &Retention{db: db, days: days, now: time.Now}
}

// Prune runs one retention pass. It is registered as a scheduled job.
func (r *Retention) Prune(ctx context.Context) error {
	cutoff := r.now().AddDate(0, 0, -r.days)
	result := r.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
	return nil
}
