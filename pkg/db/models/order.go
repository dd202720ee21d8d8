package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kisansetu/kisansetu-server/pkg/enums"
)

// Order is created only after payment verification succeeds. It shares its
// primary key with the gateway order that funded it.
type Order struct {
	GatewayOrderID string               `gorm:"column:gateway_order_id;primaryKey"`
	CustomerEmail  string               `gorm:"column:customer_email;not null;index"`
	TotalAmount    decimal.Decimal      `gorm:"column:total_amount;type:numeric(12,2);not null"`
	PaymentID      string               `gorm:"column:payment_id;not null"`
	OrderDate      time.Time            `gorm:"column:order_date;not null"`
	Status         string               `gorm:"column:status;not null"`
	DeliveryStatus enums.DeliveryStatus `gorm:"column:delivery_status;type:text;not null"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem is a snapshot copied from the payment session at verification
// time, never from live cart state.
type OrderItem struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement"`
	GatewayOrderID string          `gorm:"column:gateway_order_id;not null;index"`
	ProductID      string          `gorm:"column:product_id;not null"`
	Quantity       int             `gorm:"column:quantity;not null"`
	TotalAmount    decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
}

// PaymentDetail records the gateway's proof of payment for an order.
type PaymentDetail struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement"`
	PaymentID      string          `gorm:"column:payment_id;not null"`
	GatewayOrderID string          `gorm:"column:gateway_order_id;not null;index"`
	Signature      string          `gorm:"column:signature"`
	Email          string          `gorm:"column:email;not null"`
	Amount         decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	Currency       enums.Currency  `gorm:"column:currency;type:text;not null"`
	RecordedAt     time.Time       `gorm:"column:recorded_at;autoCreateTime"`
}
