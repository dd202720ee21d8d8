package models

// District is a flat administrative lookup.
type District struct {
	ID   int    `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

// Taluk is a sub-district lookup belonging to a District.
type Taluk struct {
	ID         int    `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:name;not null"`
	DistrictID int    `gorm:"column:district_id;not null"`
}
