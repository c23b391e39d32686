package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/donationDB/Donation-Web/internal/normalize"
)

func TestGormSweeper_RunsStepsOnOneConnection(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "program" SET "status"=\$1 WHERE LOWER\(TRIM\("status"\)\) IN \(.+\) AND "start_date" IS NOT NULL AND "start_date" <= \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "program" SET "status"=\$1 WHERE LOWER\(TRIM\("status"\)\) IN \(.+\) AND "end_date" IS NOT NULL AND "end_date" < \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "program" WHERE "end_date" IS NOT NULL AND "end_date" < \$1`).
		WithArgs("2023-10-15").
		WillReturnResult(sqlmock.NewResult(0, 3))

	ctx := context.Background()
	var counts []int64
	err := NewGormSweeper(db, DefaultProgramColumns()).Hold(ctx, func(steps SweepSteps) error {
		n, err := steps.StartDue(ctx, "2026-10-15")
		require.NoError(t, err)
		counts = append(counts, n)

		n, err = steps.FinishEnded(ctx, "2026-10-15")
		require.NoError(t, err)
		counts = append(counts, n)

		n, err = steps.PurgeEndedBefore(ctx, "2023-10-15")
		require.NoError(t, err)
		counts = append(counts, n)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int64{2, 1, 3}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSweeper_StepErrorIsReturned(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("lock wait timeout")
	mock.ExpectExec(`UPDATE "program"`).WillReturnError(boom)

	ctx := context.Background()
	err := NewGormSweeper(db, DefaultProgramColumns()).Hold(ctx, func(steps SweepSteps) error {
		_, err := steps.StartDue(ctx, "2026-10-15")
		return err
	})
	require.ErrorIs(t, err, boom)
}

func TestGormSweeper_LegacyColumnsAndMixedCaseStatus(t *testing.T) {
	db, mock := newMockDB(t)
	cols := pickProgramColumns([]string{"id", "state", "startDate", "end_at"})

	// the running variants are bound before today, sorted; "in progress"
	// matches a stored "In Progress" once lowercased
	args := []driver.Value{normalize.StatusFinished}
	for _, v := range normalize.StatusVariants(normalize.StatusRunning) {
		args = append(args, v)
	}
	args = append(args, "2026-10-15")
	require.Contains(t, args, driver.Value("in progress"))

	mock.ExpectExec(`UPDATE "program" SET "state"=\$1 WHERE LOWER\(TRIM\("state"\)\) IN \(.+\) AND "end_at" IS NOT NULL AND "end_at" < \$\d+`).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	err := NewGormSweeper(db, cols).Hold(ctx, func(steps SweepSteps) error {
		n, err := steps.FinishEnded(ctx, "2026-10-15")
		require.Equal(t, int64(1), n)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
