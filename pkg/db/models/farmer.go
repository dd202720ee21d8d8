package models

import "time"

// Farmer is a seller profile. The banking fields exist for future payouts
// and are not consumed by any flow in this service.
type Farmer struct {
	ID               string    `gorm:"column:id;primaryKey"`
	FirstName        string    `gorm:"column:first_name;not null"`
	LastName         string    `gorm:"column:last_name"`
	Mobile           string    `gorm:"column:mobile"`
	AlternateMobile  string    `gorm:"column:alternate_mobile"`
	AccountNumber    string    `gorm:"column:account_number"`
	IFSC             string    `gorm:"column:ifsc"`
	ProfileImagePath *string   `gorm:"column:profile_image_path"`
	Email            string    `gorm:"column:email;not null;uniqueIndex"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
