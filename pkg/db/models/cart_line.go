package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one product row in a customer's cart. Nothing prevents
// duplicate lines for the same product; the storefront treats the cart as a
// bag of rows.
type CartLine struct {
	ID            uint            `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID     string          `gorm:"column:product_id;not null;index"`
	CustomerEmail string          `gorm:"column:customer_email;not null;index"`
	Quantity      int             `gorm:"column:quantity;not null"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
