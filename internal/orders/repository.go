package orders

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	"github.com/kisansetu/kisansetu-server/pkg/enums"
)

// Repository reads and mutates confirmed orders.
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

// ListAll returns every order, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Order, error) {
	var rows []models.Order
	if err := r.db.WithContext(ctx).Order("order_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByCustomerEmail returns one customer's orders, newest first.
func (r *Repository) ListByCustomerEmail(ctx context.Context, email string) ([]models.Order, error) {
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("customer_email = ?", strings.ToLower(email)).
		Order("order_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListItems loads the items for a set of orders.
func (r *Repository) ListItems(ctx context.Context, gatewayOrderIDs []string) ([]models.OrderItem, error) {
	if len(gatewayOrderIDs) == 0 {
		return nil, nil
	}
	var items []models.OrderItem
	err := r.db.WithContext(ctx).
		Where("gateway_order_id IN ?", gatewayOrderIDs).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListItemsByProductIDs loads order items referencing any of the products.
func (r *Repository) ListItemsByProductIDs(ctx context.Context, productIDs []string) ([]models.OrderItem, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var items []models.OrderItem
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindByIDs loads orders for a set of gateway order ids.
func (r *Repository) FindByIDs(ctx context.Context, gatewayOrderIDs []string) ([]models.Order, error) {
	if len(gatewayOrderIDs) == 0 {
		return nil, nil
	}
	var rows []models.Order
	err := r.db.WithContext(ctx).
		Where("gateway_order_id IN ?", gatewayOrderIDs).
		Order("order_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateDeliveryStatus sets the delivery status for one order.
func (r *Repository) UpdateDeliveryStatus(ctx context.Context, gatewayOrderID string, status enums.DeliveryStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("gateway_order_id = ?", gatewayOrderID).
		Update("delivery_status", status)
	return res.RowsAffected, res.Error
}
