package models

import "time"

// Address is a delivery location referencing the taluk/district lookups.
type Address struct {
	ID          string    `gorm:"column:id;primaryKey"`
	HouseNumber string    `gorm:"column:house_number;not null"`
	StreetName  string    `gorm:"column:street_name;not null"`
	Landmark    string    `gorm:"column:landmark"`
	Village     string    `gorm:"column:village"`
	City        string    `gorm:"column:city;not null"`
	TalukID     int       `gorm:"column:taluk_id;not null"`
	DistrictID  int       `gorm:"column:district_id;not null"`
	StateName   string    `gorm:"column:state_name;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
