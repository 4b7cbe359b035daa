package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Pricing models. Per-day products multiply their line total by the day count.
const (
	PricingPerDay = "Par Jour"
	PricingFlat   = "Forfait"
)

// ParsePricingType accepts the stored labels and their English spellings.
func ParsePricingType(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "par jour", "per-day", "per_day", "per day":
		return PricingPerDay, true
	case "forfait", "flat":
		return PricingFlat, true
	}
	return "", false
}

// Product is a rentable catalog entry supplied by one supplier.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	Description string          `gorm:"type:text"`
	CategoryID  uint            `gorm:"not null;index"`
	Category    *Category       `gorm:"foreignKey:CategoryID"`
	SupplierID  uint            `gorm:"not null;index"`
	Supplier    *Supplier       `gorm:"foreignKey:SupplierID"`
	Unit        string          `gorm:"size:20;not null"`
	Price       decimal.Decimal `gorm:"type:numeric;not null"`
	PricingType string          `gorm:"size:20;not null"`
	CreatedAt   time.Time
	CreatedBy   *uint
}

func (Product) TableName() string { return "products" }

func (p *Product) IsPerDay() bool { return p.PricingType == PricingPerDay }
