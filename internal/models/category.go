package models

// Category is admin-managed reference data. CategoryID is a short code in one
// schema generation and a numeric surrogate key in the other, so it is kept
// as text.
type Category struct {
	CategoryID   string `gorm:"column:category_id;primaryKey;size:64" json:"category_id" yaml:"category_id"`
	CategoryName string `gorm:"column:category_name;size:100;not null" json:"category_name" yaml:"category_name"`
	Description  string `gorm:"size:500" json:"description,omitempty" yaml:"description"`
}

func (Category) TableName() string {
	return "category"
}
