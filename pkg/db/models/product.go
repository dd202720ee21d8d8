package models

import "time"

// Product is a farmer's listing. The bulk price tier is selected client-side
// by quantity threshold.
type Product struct {
	ID               string    `gorm:"column:id;primaryKey"`
	FarmerEmail      string    `gorm:"column:farmer_email;not null;index"`
	Name             string    `gorm:"column:name;not null"`
	ProfileImagePath *string   `gorm:"column:profile_image_path"`
	NormalPrice      int       `gorm:"column:normal_price;not null"`
	BulkPrice        int       `gorm:"column:bulk_price;not null"`
	ProductType      string    `gorm:"column:product_type"`
	Rating           int       `gorm:"column:rating;not null;default:0"`
	SoldInUnit       string    `gorm:"column:sold_in_unit"`
	RemainingStock   int       `gorm:"column:remaining_stock;not null;default:0"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
