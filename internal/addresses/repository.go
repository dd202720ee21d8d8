package addresses

import (
	"context"

	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
)

// Repository persists delivery addresses.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// List returns every address.
func (r *Repository) List(ctx context.Context) ([]models.Address, error) {
	var rows []models.Address
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads one address.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Address, error) {
	var row models.Address
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new address row.
func (r *Repository) Create(ctx context.Context, row *models.Address) (*models.Address, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update saves the mutable address columns.
func (r *Repository) Update(ctx context.Context, row *models.Address) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Address{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"house_number": row.HouseNumber,
			"street_name":  row.StreetName,
			"landmark":     row.Landmark,
			"village":      row.Village,
			"city":         row.City,
			"taluk_id":     row.TalukID,
			"district_id":  row.DistrictID,
			"state_name":   row.StateName,
		})
	return res.RowsAffected, res.Error
}

// Delete removes an address by id.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Address{})
	return res.RowsAffected, res.Error
}
