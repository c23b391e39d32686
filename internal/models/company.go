package models

// Company owns programs through Program.CompanyID. Programs is a projection
// filled at read time and is not persisted.
type Company struct {
	CompanyID   string    `gorm:"column:company_id;primaryKey;size:64" json:"company_id" yaml:"company_id"`
	CompanyName string    `gorm:"column:company_name;size:200;not null" json:"company_name" yaml:"company_name"`
	Contact     string    `gorm:"size:100" json:"contact" yaml:"contact"`
	Address     string    `gorm:"size:255" json:"address" yaml:"address"`
	Programs    []Program `gorm:"-" json:"programs" yaml:"-"`
}

func (Company) TableName() string {
	return "company"
}
