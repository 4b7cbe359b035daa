package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses. Only devis → facture carries side effects.
const (
	InvoiceDevis     = "devis"
	InvoiceFacture   = "facture"
	InvoicePaid      = "paid"
	InvoiceCancelled = "cancelled"
)

const (
	DevisPrefix   = "DEV-"
	FacturePrefix = "FAC-"

	DefaultCompanyName = "Votre Entreprise"
	DefaultClientName  = "Client"
)

func IsInvoiceStatus(s string) bool {
	switch s {
	case InvoiceDevis, InvoiceFacture, InvoicePaid, InvoiceCancelled:
		return true
	}
	return false
}

// FactureNumber rewrites a devis number into its facture form.
func FactureNumber(devis string) string {
	if strings.HasPrefix(devis, DevisPrefix) {
		return FacturePrefix + strings.TrimPrefix(devis, DevisPrefix)
	}
	return devis
}

// Invoice is a client-facing devis or facture. Client and issuer fields are
// snapshots taken at creation time.
type Invoice struct {
	ID            uint     `gorm:"primaryKey"`
	InvoiceNumber string   `gorm:"size:20;uniqueIndex;not null"`
	StandID       *uint    `gorm:"index"`
	Stand         *Stand   `gorm:"foreignKey:StandID"`
	ClientID      *uint    `gorm:"index"`
	ContactID     *uint    `gorm:"index"`
	Contact       *Contact `gorm:"foreignKey:ContactID"`

	ClientName    string `gorm:"size:100;not null"`
	ClientEmail   string `gorm:"size:120"`
	ClientPhone   string `gorm:"size:20"`
	ClientAddress string `gorm:"type:text"`
	ClientCompany string `gorm:"size:100"`

	TotalHT        decimal.Decimal `gorm:"column:total_ht;type:numeric;not null"`
	TVAAmount      decimal.Decimal `gorm:"column:tva_amount;type:numeric;not null"`
	TotalTTC       decimal.Decimal `gorm:"column:total_ttc;type:numeric;not null"`
	Remise         decimal.Decimal `gorm:"type:numeric;not null"`
	RemiseType     string          `gorm:"size:20;not null;default:percentage"`
	TVAPercentage  decimal.Decimal `gorm:"column:tva_percentage;type:numeric;not null"`
	ProductFactor  decimal.Decimal `gorm:"type:numeric;not null"`
	Currency       string          `gorm:"size:10;not null;default:TND"`
	TimbreFiscale  decimal.Decimal `gorm:"type:numeric;not null"`
	AdvancePayment decimal.Decimal `gorm:"type:numeric;not null"`
	Status         string          `gorm:"size:20;not null;default:devis"`

	AgentName      string `gorm:"size:100"`
	CompanyName    string `gorm:"size:200;not null;default:Votre Entreprise"`
	CompanyAddress string `gorm:"type:text"`
	CompanyPhone   string `gorm:"size:20"`
	CompanyEmail   string `gorm:"size:120"`

	CreatedAt  time.Time
	ApprovedAt *time.Time
	CreatedBy  *uint
	Items      []InvoiceItem `gorm:"foreignKey:InvoiceID"`
}

func (Invoice) TableName() string { return "invoices" }

// InvoiceItem keeps the product name and pricing model as they were when
// the line was written.
type InvoiceItem struct {
	ID          uint            `gorm:"primaryKey"`
	InvoiceID   uint            `gorm:"not null;index"`
	ProductID   uint            `gorm:"not null"`
	ProductName string          `gorm:"size:200;not null"`
	PricingType string          `gorm:"size:20"`
	Quantity    int             `gorm:"not null"`
	Days        int             `gorm:"not null;default:1"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	Factor      decimal.Decimal `gorm:"type:numeric;not null"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric;not null"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }
