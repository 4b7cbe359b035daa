package model

import "time"

// Client is the pre-contacts client table. Stands still reference it and
// the backfill command folds it into contacts.
type Client struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:100;not null"`
	ContactPerson string `gorm:"size:100"`
	Email         string `gorm:"size:120"`
	Phone         string `gorm:"size:20"`
	Address       string `gorm:"type:text"`
	Company       string `gorm:"size:100"`
	Status        string `gorm:"size:20;not null;default:Actif"`
	CreatedAt     time.Time
	CreatedBy     *uint
}

func (Client) TableName() string { return "clients" }

// Supplier is the pre-contacts supplier table, referenced by products and purchases.
type Supplier struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:100;not null"`
	ContactPerson string `gorm:"size:100"`
	Email         string `gorm:"size:120"`
	Phone         string `gorm:"size:20"`
	Address       string `gorm:"type:text"`
	Speciality    string `gorm:"size:200"`
	Status        string `gorm:"size:20;not null;default:Actif"`
	CreatedAt     time.Time
	CreatedBy     *uint
}

func (Supplier) TableName() string { return "suppliers" }
