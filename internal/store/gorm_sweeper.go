package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/normalize"
)

// GormSweeper runs the sweep statements against the program table. Status
// predicates compare the lowercased stored value against every spelling of
// a state, so rows from either schema generation advance.
type GormSweeper struct {
	db   *gorm.DB
	cols ProgramColumns
}

func NewGormSweeper(db *gorm.DB, cols ProgramColumns) *GormSweeper {
	return &GormSweeper{db: db, cols: cols}
}

func (s *GormSweeper) Hold(ctx context.Context, fn func(SweepSteps) error) error {
	return s.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(sweepConn{db: conn, cols: s.cols})
	})
}

type sweepConn struct {
	db   *gorm.DB
	cols ProgramColumns
}

// advance moves rows in state from to state to once their date column
// passes today. inclusive selects <= over <.
func (c sweepConn) advance(ctx context.Context, from, to, dateCol string, inclusive bool, today string) (int64, error) {
	q := c.db.Statement.Quote
	op := " < ?"
	if inclusive {
		op = " <= ?"
	}
	where := "LOWER(TRIM(" + q(c.cols.Status) + ")) IN ? AND " + q(dateCol) + " IS NOT NULL AND " + q(dateCol) + op
	res := c.db.WithContext(ctx).Table("program").
		Where(where, normalize.StatusVariants(from), today).
		Update(c.cols.Status, to)
	return res.RowsAffected, res.Error
}

func (c sweepConn) StartDue(ctx context.Context, today string) (int64, error) {
	return c.advance(ctx, normalize.StatusPlanned, normalize.StatusRunning, c.cols.StartDate, true, today)
}

func (c sweepConn) FinishEnded(ctx context.Context, today string) (int64, error) {
	return c.advance(ctx, normalize.StatusRunning, normalize.StatusFinished, c.cols.EndDate, false, today)
}

func (c sweepConn) PurgeEndedBefore(ctx context.Context, cutoff string) (int64, error) {
	end := c.db.Statement.Quote(c.cols.EndDate)
	res := c.db.WithContext(ctx).
		Where(end+" IS NOT NULL AND "+end+" < ?", cutoff).
		Delete(&models.Program{})
	return res.RowsAffected, res.Error
}
