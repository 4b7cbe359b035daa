package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stand workflow states.
const (
	StandDraft              = "draft"
	StandValidatedLogistics = "validated_logistics"
	StandValidatedFinance   = "validated_finance"
	StandApproved           = "approved"
)

// Stand is a configured exhibition booth: a bundle of rented products for
// one client. TotalAmount always equals the sum of the item line totals.
type Stand struct {
	ID                   uint            `gorm:"primaryKey"`
	Name                 string          `gorm:"size:100;not null"`
	ClientID             *uint           `gorm:"index"`
	Client               *Client         `gorm:"foreignKey:ClientID"`
	Description          string          `gorm:"type:text"`
	Status               string          `gorm:"size:20;not null;default:draft"`
	TotalAmount          decimal.Decimal `gorm:"type:numeric;not null"`
	Currency             string          `gorm:"size:10;not null;default:TND"`
	CreatedAt            time.Time
	CreatedBy            *uint
	Creator              *User `gorm:"foreignKey:CreatedBy"`
	ValidatedLogisticsBy *uint
	ValidatedFinanceBy   *uint
	Items                []StandItem `gorm:"foreignKey:StandID"`
}

func (Stand) TableName() string { return "stands" }

// StandItem snapshots the unit price at assembly time.
type StandItem struct {
	ID         uint            `gorm:"primaryKey"`
	StandID    uint            `gorm:"not null;index"`
	ProductID  uint            `gorm:"not null"`
	Product    *Product        `gorm:"foreignKey:ProductID"`
	Quantity   int             `gorm:"not null"`
	Days       int             `gorm:"not null;default:1"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric;not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric;not null"`
}

func (StandItem) TableName() string { return "stand_items" }
