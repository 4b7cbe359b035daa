package model

import "time"

const DefaultCategoryColor = "#8884d8"

// Category groups products in the catalog.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Color       string `gorm:"size:20;not null;default:#8884d8"`
	CreatedAt   time.Time
	CreatedBy   *uint
}

func (Category) TableName() string { return "categories" }
