package customers

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
)

// Repository persists customer profiles.
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

// List returns every customer profile.
func (r *Repository) List(ctx context.Context) ([]models.Customer, error) {
	var rows []models.Customer
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads one customer.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var row models.Customer
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByEmail loads one customer by their unique email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var row models.Customer
	if err := r.db.WithContext(ctx).First(&row, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new customer row.
func (r *Repository) Create(ctx context.Context, row *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Update saves the mutable profile columns.
func (r *Repository) Update(ctx context.Context, row *models.Customer) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"first_name":         row.FirstName,
			"last_name":          row.LastName,
			"phone":              row.Phone,
			"alternate_phone":    row.AlternatePhone,
			"profile_image_path": row.ProfileImagePath,
		})
	return res.RowsAffected, res.Error
}

// Delete removes a customer by id.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Customer{})
	return res.RowsAffected, res.Error
}
