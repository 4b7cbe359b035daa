package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type InvoiceItemInput struct {
	ProductID   uint             `json:"product_id"   validate:"required"`
	ProductName string           `json:"product_name" validate:"max=200"`
	PricingType string           `json:"pricing_type"`
	Quantity    int              `json:"quantity"     validate:"required,min=1"`
	Days        int              `json:"days"         validate:"omitempty,min=1"`
	UnitPrice   decimal.Decimal  `json:"unit_price"   validate:"min=0"`
	Factor      *decimal.Decimal `json:"factor"`
}

// CreateInvoiceRequest covers both creation modes. UseStand defaults to true.
type CreateInvoiceRequest struct {
	UseStand *bool `json:"use_stand"`
	StandID  *uint `json:"stand_id"`
	ClientID *uint `json:"client_id"`

	ClientName    string `json:"client_name"    validate:"max=100"`
	ClientEmail   string `json:"client_email"   validate:"max=120"`
	ClientPhone   string `json:"client_phone"   validate:"max=20"`
	ClientAddress string `json:"client_address"`
	ClientCompany string `json:"client_company" validate:"max=100"`

	Remise        *decimal.Decimal `json:"remise"         validate:"omitempty,min=0"`
	RemiseType    string           `json:"remise_type"    validate:"omitempty,oneof=percentage fixed"`
	TVAPercentage *decimal.Decimal `json:"tva_percentage" validate:"omitempty,min=0"`
	ProductFactor *decimal.Decimal `json:"product_factor"`
	TimbreFiscale *decimal.Decimal `json:"timbre_fiscale" validate:"omitempty,min=0"`
	Currency      string           `json:"currency"       validate:"max=10"`

	CompanyName    string `json:"company_name"    validate:"max=200"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"   validate:"max=20"`
	CompanyEmail   string `json:"company_email"   validate:"max=120"`

	ModifiedItems []InvoiceItemInput `json:"modified_items" validate:"dive"`
}

// UpdateInvoiceRequest either replaces the item list (ModifiedItems present,
// possibly empty) or changes the status.
type UpdateInvoiceRequest struct {
	ModifiedItems *[]InvoiceItemInput `json:"modified_items"`

	ClientName    *string `json:"client_name"`
	ClientEmail   *string `json:"client_email"`
	ClientPhone   *string `json:"client_phone"`
	ClientAddress *string `json:"client_address"`
	ClientCompany *string `json:"client_company"`

	CompanyName    *string `json:"company_name"`
	CompanyAddress *string `json:"company_address"`
	CompanyPhone   *string `json:"company_phone"`
	CompanyEmail   *string `json:"company_email"`

	Remise        *decimal.Decimal `json:"remise"`
	RemiseType    *string          `json:"remise_type" validate:"omitempty,oneof=percentage fixed"`
	TVAPercentage *decimal.Decimal `json:"tva_percentage"`
	ProductFactor *decimal.Decimal `json:"product_factor"`
	TimbreFiscale *decimal.Decimal `json:"timbre_fiscale"`
	Currency      *string          `json:"currency"`

	Status         *string          `json:"status"`
	AdvancePayment *decimal.Decimal `json:"advance_payment"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type InvoiceResponse struct {
	ID            uint    `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	StandID       *uint   `json:"stand_id"`
	StandName     *string `json:"stand_name"`
	ClientID      *uint   `json:"client_id"`
	ContactID     *uint   `json:"contact_id"`

	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone"`
	ClientAddress string `json:"client_address"`
	ClientCompany string `json:"client_company"`

	TotalHT        decimal.Decimal `json:"total_ht"`
	TVAAmount      decimal.Decimal `json:"tva_amount"`
	TotalTTC       decimal.Decimal `json:"total_ttc"`
	AdvancePayment decimal.Decimal `json:"advance_payment"`
	Remise         decimal.Decimal `json:"remise"`
	RemiseType     string          `json:"remise_type"`
	TVAPercentage  decimal.Decimal `json:"tva_percentage"`
	ProductFactor  decimal.Decimal `json:"product_factor"`
	Currency       string          `json:"currency"`
	TimbreFiscale  decimal.Decimal `json:"timbre_fiscale"`
	Status         string          `json:"status"`

	AgentName      string `json:"agent_name"`
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`

	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at"`
	CreatedBy  *uint      `json:"created_by"`
}

type InvoiceItemResponse struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	PricingType string          `json:"pricing_type"`
	Quantity    int             `json:"quantity"`
	Days        int             `json:"days"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Factor      decimal.Decimal `json:"factor"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type CreateInvoiceResponse struct {
	Message       string `json:"message"`
	InvoiceID     uint   `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
}

type InvoiceTotals struct {
	ID            uint            `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalHT       decimal.Decimal `json:"total_ht"`
	TVAAmount     decimal.Decimal `json:"tva_amount"`
	TotalTTC      decimal.Decimal `json:"total_ttc"`
}

// UpdateInvoiceResponse carries Invoice after an item update and
// InvoiceNumber after a status update.
type UpdateInvoiceResponse struct {
	Message       string         `json:"message"`
	Invoice       *InvoiceTotals `json:"invoice,omitempty"`
	InvoiceNumber string         `json:"invoice_number,omitempty"`
}
