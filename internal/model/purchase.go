package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PurchasePending  = "pending"
	PurchaseApproved = "approved"
	PurchaseSent     = "sent"
)

// Purchase is a supplier-facing order ("bon de commande"). Purchases built
// from a stand only hold items whose product belongs to SupplierID.
type Purchase struct {
	ID             uint            `gorm:"primaryKey"`
	StandID        *uint           `gorm:"index"`
	Stand          *Stand          `gorm:"foreignKey:StandID"`
	PurchaseNumber string          `gorm:"size:20;uniqueIndex;not null"`
	SupplierID     uint            `gorm:"not null;index"`
	Supplier       *Supplier       `gorm:"foreignKey:SupplierID"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric;not null"`
	Currency       string          `gorm:"size:10;not null;default:TND"`
	Status         string          `gorm:"size:20;not null;default:pending"`
	Notes          string          `gorm:"type:text"`
	CreatedAt      time.Time
	CreatedBy      *uint
	Creator        *User          `gorm:"foreignKey:CreatedBy"`
	Items          []PurchaseItem `gorm:"foreignKey:PurchaseID"`
}

func (Purchase) TableName() string { return "purchases" }

type PurchaseItem struct {
	ID         uint            `gorm:"primaryKey"`
	PurchaseID uint            `gorm:"not null;index"`
	ProductID  uint            `gorm:"not null"`
	Product    *Product        `gorm:"foreignKey:ProductID"`
	Quantity   int             `gorm:"not null"`
	Days       int             `gorm:"not null;default:1"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric;not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric;not null"`
}

func (PurchaseItem) TableName() string { return "purchase_items" }
