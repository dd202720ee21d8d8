package farmers

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
)

// Repository persists farmer profiles.
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

// List returns every farmer profile.
func (r *Repository) List(ctx context.Context) ([]models.Farmer, error) {
	var rows []models.Farmer
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByEmail loads one farmer by their unique email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Farmer, error) {
	var row models.Farmer
	if err := r.db.WithContext(ctx).First(&row, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new farmer row.
func (r *Repository) Create(ctx context.Context, row *models.Farmer) (*models.Farmer, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update saves the mutable profile columns.
func (r *Repository) Update(ctx context.Context, row *models.Farmer) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Farmer{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"first_name":         row.FirstName,
			"last_name":          row.LastName,
			"mobile":             row.Mobile,
			"alternate_mobile":   row.AlternateMobile,
			"account_number":     row.AccountNumber,
			"ifsc":               row.IFSC,
			"profile_image_path": row.ProfileImagePath,
		})
	return res.RowsAffected, res.Error
}

// Delete removes a farmer by id.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Farmer{})
	return res.RowsAffected, res.Error
}
