package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

func init() {
	// The admin pages format amounts with Number(value); emit plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Program is a donation program in canonical form. Rows in the database may
// carry other column names or status vocabularies; they are resolved by the
// normalize package before reaching this shape.
type Program struct {
	ProgramID     string              `gorm:"column:program_id;primaryKey;size:64" json:"program_id"`
	ProgramName   string              `gorm:"column:program_name;size:200;not null" json:"program_name"`
	Category      string              `gorm:"size:50" json:"category"`
	CategoryLabel string              `gorm:"-" json:"category_label"`
	Status        string              `gorm:"size:30;not null;default:'planned';index" json:"status"`
	StatusLabel   string              `gorm:"-" json:"status_label"`
	StartDate     *datatypes.Date     `gorm:"column:start_date" json:"start_date"`
	EndDate       *datatypes.Date     `gorm:"column:end_date;index" json:"end_date"`
	TotalAmount   decimal.NullDecimal `gorm:"column:total_amount;type:decimal(15,2)" json:"total_amount"`
	Location      string              `gorm:"size:255" json:"location,omitempty"`
	Description   string              `gorm:"type:text" json:"description,omitempty"`
	Organization  string              `gorm:"size:200" json:"organization,omitempty"`
	Contact       string              `gorm:"size:100" json:"contact,omitempty"`
	CompanyID     *string             `gorm:"column:company_id;size:64;index" json:"company_id"`
	CreatedAt     *time.Time          `json:"created_at,omitempty"`
	UpdatedAt     *time.Time          `json:"updated_at,omitempty"`
}

func (Program) TableName() string {
	return "program"
}

// Deadline returns the end date as a time, or false when it is unknown.
func (p Program) Deadline() (time.Time, bool) {
	if p.EndDate == nil {
		return time.Time{}, false
	}
	return time.Time(*p.EndDate), true
}

// Start returns the start date as a time, or false when it is unknown.
func (p Program) Start() (time.Time, bool) {
	if p.StartDate == nil {
		return time.Time{}, false
	}
	return time.Time(*p.StartDate), true
}

// Amount returns the total amount, treating a missing value as zero.
func (p Program) Amount() decimal.Decimal {
	if !p.TotalAmount.Valid {
		return decimal.Zero
	}
	return p.TotalAmount.Decimal
}
