package checkout

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/kisansetu/kisansetu-server/pkg/db/models"
	"github.com/kisansetu/kisansetu-server/pkg/enums"
)

// Repository persists payment sessions and the orders they are promoted to.
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

// CreateSession inserts the pending session and its item snapshot.
func (r *Repository) CreateSession(ctx context.Context, session *models.PaymentSession, items []models.PaymentSessionItem) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// FindSession loads a session by the gateway order id.
func (r *Repository) FindSession(ctx context.Context, gatewayOrderID string) (*models.PaymentSession, error) {
	var session models.PaymentSession
	if err := r.db.WithContext(ctx).First(&session, "gateway_order_id = ?", gatewayOrderID).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessionItems loads the item snapshot for a session.
func (r *Repository) ListSessionItems(ctx context.Context, gatewayOrderID string) ([]models.PaymentSessionItem, error) {
	var items []models.PaymentSessionItem
	err := r.db.WithContext(ctx).
		Where("gateway_order_id = ?", gatewayOrderID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateSessionStatus moves a session to the given status.
func (r *Repository) UpdateSessionStatus(ctx context.Context, gatewayOrderID string, status enums.PaymentSessionStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.PaymentSession{}).
		Where("gateway_order_id = ?", gatewayOrderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// CreateOrder inserts the confirmed order and its item snapshot.
func (r *Repository) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// CreatePaymentDetail records the gateway's proof of payment.
func (r *Repository) CreatePaymentDetail(ctx context.Context, detail *models.PaymentDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

// DeleteCartLines removes every cart line for a customer.
func (r *Repository) DeleteCartLines(ctx context.Context, customerEmail string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("customer_email = ?", strings.ToLower(customerEmail)).
		Delete(&models.CartLine{})
	return res.RowsAffected, res.Error
}

// OrderExists reports whether an order row already exists for the gateway
// order id. Used to reject duplicate verification callbacks.
func (r *Repository) OrderExists(ctx context.Context, gatewayOrderID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("gateway_order_id = ?", gatewayOrderID).
		Count(&count).Error
	return count > 0, err
}
