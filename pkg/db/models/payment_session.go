package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kisansetu/kisansetu-server/pkg/enums"
)

// PaymentSession is the pending-checkout record keyed by the gateway order
// id. It bridges cart contents to eventual Order creation and exists before
// the Order it may become.
type PaymentSession struct {
	GatewayOrderID string                     `gorm:"column:gateway_order_id;primaryKey"`
	CustomerEmail  string                     `gorm:"column:customer_email;not null;index"`
	TotalAmount    decimal.Decimal            `gorm:"column:total_amount;type:numeric(12,2);not null"`
	ItemCount      int                        `gorm:"column:item_count;not null"`
	Status         enums.PaymentSessionStatus `gorm:"column:status;type:text;not null"`
	CreatedAt      time.Time                  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time                  `gorm:"column:updated_at;autoUpdateTime"`
}

// PaymentSessionItem snapshots one cart line at initiation time.
type PaymentSessionItem struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement"`
	GatewayOrderID string          `gorm:"column:gateway_order_id;not null;index"`
	ProductID      string          `gorm:"column:product_id;not null"`
	Quantity       int             `gorm:"column:quantity;not null"`
	TotalAmount    decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
}
