package models

import "time"

// Customer is a buyer profile. ProfileImagePath stores the relative media
// path; absolute URLs are rehydrated per request.
type Customer struct {
	ID               string    `gorm:"column:id;primaryKey"`
	FirstName        string    `gorm:"column:first_name;not null"`
	LastName         string    `gorm:"column:last_name"`
	Phone            string    `gorm:"column:phone"`
	AlternatePhone   string    `gorm:"column:alternate_phone"`
	ProfileImagePath *string   `gorm:"column:profile_image_path"`
	Email            string    `gorm:"column:email;not null;uniqueIndex"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
