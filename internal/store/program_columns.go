package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/donationDB/Donation-Web/internal/normalize"
)

// ProgramColumns names the program table columns the writes and the sweep
// address. Older tables use other names for the same fields.
type ProgramColumns struct {
	ID        string
	Status    string
	StartDate string
	EndDate   string
	UpdatedAt string // empty when the table has no such column
}

func DefaultProgramColumns() ProgramColumns {
	return ProgramColumns{
		ID:        "program_id",
		Status:    "status",
		StartDate: "start_date",
		EndDate:   "end_date",
		UpdatedAt: "updated_at",
	}
}

// ResolveProgramColumns reads the program table's columns once and picks,
// per field, the first accepted name the table has. Fields the table lacks
// keep their default name, as does everything when there is no table yet.
func ResolveProgramColumns(db *gorm.DB) (ProgramColumns, error) {
	if !db.Migrator().HasTable("program") {
		return DefaultProgramColumns(), nil
	}
	types, err := db.Migrator().ColumnTypes("program")
	if err != nil {
		return DefaultProgramColumns(), err
	}
	names := make([]string, len(types))
	for i, ct := range types {
		names[i] = ct.Name()
	}
	return pickProgramColumns(names), nil
}

func pickProgramColumns(names []string) ProgramColumns {
	cols := DefaultProgramColumns()
	if len(names) == 0 {
		return cols
	}
	find := func(field, fallback string) string {
		for _, alias := range normalize.FieldAliases(field) {
			for _, name := range names {
				if strings.EqualFold(name, alias) {
					return name
				}
			}
		}
		return fallback
	}
	cols.ID = find("program_id", cols.ID)
	cols.Status = find("status", cols.Status)
	cols.StartDate = find("start_date", cols.StartDate)
	cols.EndDate = find("end_date", cols.EndDate)
	cols.UpdatedAt = find("updated_at", "")
	return cols
}
