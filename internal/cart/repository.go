package cart

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
)

// Repository persists cart lines.
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

// List returns every cart line.
func (r *Repository) List(ctx context.Context) ([]models.CartLine, error) {
	var rows []models.CartLine
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByCustomerEmail returns the cart lines for one customer.
func (r *Repository) ListByCustomerEmail(ctx context.Context, email string) ([]models.CartLine, error) {
	var rows []models.CartLine
	err := r.db.WithContext(ctx).
		Where("customer_email = ?", strings.ToLower(email)).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new cart line.
func (r *Repository) Create(ctx context.Context, row *models.CartLine) (*models.CartLine, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateQuantity sets quantity and total for one customer's product line.
func (r *Repository) UpdateQuantity(ctx context.Context, email, productID string, quantity int, total decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("customer_email = ? AND product_id = ?", strings.ToLower(email), productID).
		Updates(map[string]any{"quantity": quantity, "total_amount": total})
	return res.RowsAffected, res.Error
}

// DeleteByProductID removes one customer's lines for a product.
func (r *Repository) DeleteByProductID(ctx context.Context, email, productID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("customer_email = ? AND product_id = ?", strings.ToLower(email), productID).
		Delete(&models.CartLine{})
	return res.RowsAffected, res.Error
}
