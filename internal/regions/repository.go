package regions

import (
	"context"

	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
)

// Repository persists the district/taluk lookup tables.
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

// ListDistricts returns every district ordered by name.
func (r *Repository) ListDistricts(ctx context.Context) ([]models.District, error) {
	var districts []models.District
	if err := r.db.WithContext(ctx).Order("name").Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

// CreateDistrict inserts a new district row.
func (r *Repository) CreateDistrict(ctx context.Context, district *models.District) (*models.District, error) {
	if err := r.db.WithContext(ctx).Create(district).Error; err != nil {
		return nil, err
	}
	return district, nil
}

// UpdateDistrict saves the district row.
func (r *Repository) UpdateDistrict(ctx context.Context, district *models.District) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.District{}).
		Where("id = ?", district.ID).
		Update("name", district.Name)
	return res.RowsAffected, res.Error
}

// DeleteDistrict removes a district by id.
func (r *Repository) DeleteDistrict(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.District{})
	return res.RowsAffected, res.Error
}

// ListTaluks returns every taluk, optionally filtered by district.
func (r *Repository) ListTaluks(ctx context.Context, districtID int) ([]models.Taluk, error) {
	query := r.db.WithContext(ctx).Order("name")
	if districtID > 0 {
		query = query.Where("district_id = ?", districtID)
	}
	var taluks []models.Taluk
	if err := query.Find(&taluks).Error; err != nil {
		return nil, err
	}
	return taluks, nil
}

// CreateTaluk inserts a new taluk row.
func (r *Repository) CreateTaluk(ctx context.Context, taluk *models.Taluk) (*models.Taluk, error) {
	if err := r.db.WithContext(ctx).Create(taluk).Error; err != nil {
		return nil, err
	}
	return taluk, nil
}

// UpdateTaluk saves the taluk row.
func (r *Repository) UpdateTaluk(ctx context.Context, taluk *models.Taluk) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Taluk{}).
		Where("id = ?", taluk.ID).
		Updates(map[string]any{"name": taluk.Name, "district_id": taluk.DistrictID})
	return res.RowsAffected, res.Error
}

// DeleteTaluk removes a taluk by id.
func (r *Repository) DeleteTaluk(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Taluk{})
	return res.RowsAffected, res.Error
}

// FindDistrict loads one district.
func (r *Repository) FindDistrict(ctx context.Context, id int) (*models.District, error) {
	var district models.District
	if err := r.db.WithContext(ctx).First(&district, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &district, nil
}
