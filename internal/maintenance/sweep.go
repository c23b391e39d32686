// Package maintenance holds the daily program sweep and the scheduler that
// triggers it.
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/donationDB/Donation-Web/internal/metrics"
	"github.com/donationDB/Donation-Web/internal/store"
)

// RetentionYears is how long a program is kept after its end date.
const RetentionYears = 3

const dateLayout = "2006-01-02"

// Step names, also used as metric labels.
const (
	StepStart  = "start"
	StepFinish = "finish"
	StepPurge  = "purge"
)

// Report counts the rows each sweep step changed.
type Report struct {
	Started  int64
	Finished int64
	Purged   int64
}

// Sweep advances program states for the calendar day of today and purges
// programs that ended more than RetentionYears ago. The steps run in order
// on one connection; a failed step does not stop the next one and all step
// errors are joined into the result.
func Sweep(ctx context.Context, sweeper store.Sweeper, today time.Time) (Report, error) {
	day := today.Format(dateLayout)
	cutoff := today.AddDate(-RetentionYears, 0, 0).Format(dateLayout)

	var report Report
	err := sweeper.Hold(ctx, func(steps store.SweepSteps) error {
		var errs []error
		run := func(step string, dst *int64, fn func() (int64, error)) {
			n, err := fn()
			if err != nil {
				metrics.SweepFailures.WithLabelValues(step).Inc()
				slog.Error("sweep step failed", "operation", "maintenance.sweep", "step", step, "error", err)
				errs = append(errs, fmt.Errorf("%s: %w", step, err))
				return
			}
			*dst = n
			metrics.SweepRows.WithLabelValues(step).Add(float64(n))
		}

		run(StepStart, &report.Started, func() (int64, error) { return steps.StartDue(ctx, day) })
		run(StepFinish, &report.Finished, func() (int64, error) { return steps.FinishEnded(ctx, day) })
		run(StepPurge, &report.Purged, func() (int64, error) { return steps.PurgeEndedBefore(ctx, cutoff) })
		return errors.Join(errs...)
	})
	return report, err
}

// SweepJob wraps Sweep as a scheduled job. now supplies the wall clock in
// the configured time zone.
func SweepJob(sweeper store.Sweeper, now func() time.Time) Job {
	return Job{
		Name: "program-sweep",
		Run: func(ctx context.Context) error {
			report, err := Sweep(ctx, sweeper, now())
			slog.Info("program sweep completed",
				"started", report.Started,
				"finished", report.Finished,
				"purged", report.Purged,
			)
			return err
		},
	}
}
