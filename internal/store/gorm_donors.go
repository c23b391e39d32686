package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/donationDB/Donation-Web/internal/models"
)

// GormDonors is the primary donor store.
type GormDonors struct {
	*GormTable[models.Donor]
}

func NewGormDonors(db *gorm.DB) *GormDonors {
	return &GormDonors{GormTable: NewGormTable[models.Donor](db, "donor_id")}
}

// List returns donors newest first.
func (d *GormDonors) List(ctx context.Context) ([]models.Donor, error) {
	var out []models.Donor
	if err := d.db.WithContext(ctx).Order("donor_id DESC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (d *GormDonors) FindByEmail(ctx context.Context, email string) (*models.Donor, error) {
	var donor models.Donor
	if err := d.db.WithContext(ctx).Where("email = ?", email).First(&donor).Error; err != nil {
		return nil, translate(err)
	}
	return &donor, nil
}

// Update is not offered for donors.
func (d *GormDonors) Update(context.Context, *models.Donor) error {
	return ErrNotSupported
}
