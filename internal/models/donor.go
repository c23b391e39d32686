package models

import "time"

// Donor is a registered individual supporter. Password is stored as given
// (or as a bcrypt hash when PASSWORD_MODE=bcrypt) and never serialized.
type Donor struct {
	DonorID   int64     `gorm:"column:donor_id;primaryKey;autoIncrement" json:"donor_id" yaml:"donor_id"`
	Name      string    `gorm:"size:100;not null" json:"name" yaml:"name"`
	Email     *string   `gorm:"size:255;uniqueIndex" json:"email" yaml:"email"`
	Phone     *string   `gorm:"size:30" json:"phone" yaml:"phone"`
	Password  string    `gorm:"size:255;not null" json:"-" yaml:"password"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

func (Donor) TableName() string {
	return "donor"
}
