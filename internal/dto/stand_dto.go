package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateStandRequest struct {
	Name        string          `json:"name"        validate:"required,max=100"`
	Description string          `json:"description"`
	ClientID    *uint           `json:"client_id"`
	Currency    string          `json:"currency"    validate:"max=10"`
	Items       []LineItemInput `json:"items"       validate:"dive"`
}

type UpdateStandRequest struct {
	Name        *string    `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description"`
	ClientID    NullableID `json:"client_id"`
}

type ReplaceStandItemsRequest struct {
	Items []LineItemInput `json:"items" validate:"dive"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type StandItemResponse struct {
	ID           uint            `json:"id"`
	ProductID    uint            `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	Quantity     int             `json:"quantity"`
	Days         int             `json:"days"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

type StandResponse struct {
	ID                   uint                `json:"id"`
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	ClientID             *uint               `json:"client_id"`
	Status               string              `json:"status"`
	TotalAmount          decimal.Decimal     `json:"total_amount"`
	Total                decimal.Decimal     `json:"total"`
	Currency             string              `json:"currency"`
	CreatedAt            time.Time           `json:"created_at"`
	Creator              string              `json:"creator"`
	ValidatedLogisticsBy *uint               `json:"validated_logistics_by"`
	ValidatedFinanceBy   *uint               `json:"validated_finance_by"`
	Items                []StandItemResponse `json:"items"`
}

type PurchaseRef struct {
	ID             uint   `json:"id"`
	PurchaseNumber string `json:"purchase_number"`
	SupplierID     uint   `json:"supplier_id"`
}

type CreateStandResponse struct {
	Message          string        `json:"message"`
	StandID          uint          `json:"stand_id"`
	PurchasesCreated []PurchaseRef `json:"purchases_created"`
}

type WorkflowResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
