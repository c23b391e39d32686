package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/donationDB/Donation-Web/internal/models"
)

func TestPickProgramColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    ProgramColumns
	}{
		{"no table", nil, DefaultProgramColumns()},
		{
			"current schema",
			[]string{"program_id", "program_name", "status", "start_date", "end_date", "updated_at"},
			DefaultProgramColumns(),
		},
		{
			"legacy schema",
			[]string{"id", "title", "State", "start_at", "deadline"},
			ProgramColumns{ID: "id", Status: "State", StartDate: "start_at", EndDate: "deadline"},
		},
		{
			"canonical name wins over alias",
			[]string{"id", "program_id", "status", "state", "end_date", "end_at", "start_date"},
			ProgramColumns{ID: "program_id", Status: "status", StartDate: "start_date", EndDate: "end_date"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, pickProgramColumns(tt.columns))
		})
	}
}

func TestGormPrograms_LegacyKeyColumn(t *testing.T) {
	db, mock := newMockDB(t)
	cols := pickProgramColumns([]string{"id", "status", "start_date", "end_date"})

	mock.ExpectExec(`UPDATE "program" SET "status"=\$1 WHERE "id" = \$2`).
		WithArgs("rejected", "101").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "program" WHERE "id" = \$1`).
		WithArgs("101").
		WillReturnResult(sqlmock.NewResult(0, 1))

	programs := NewGormPrograms(db, cols)
	ctx := context.Background()
	require.NoError(t, programs.Update(ctx, &models.Program{ProgramID: "101", Status: "rejected"}))
	require.NoError(t, programs.Delete(ctx, "101"))
	require.NoError(t, mock.ExpectationsWereMet())
}
