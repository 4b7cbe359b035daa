package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePurchaseRequest struct {
	StandID     *uint            `json:"stand_id"`
	SupplierID  uint             `json:"supplier_id"  validate:"required"`
	TotalAmount *decimal.Decimal `json:"total_amount" validate:"omitempty,min=0"`
	Currency    string           `json:"currency"     validate:"max=10"`
	Notes       string           `json:"notes"`
	Items       []LineItemInput  `json:"items"        validate:"dive"`
}

type PurchaseResponse struct {
	ID             uint            `json:"id"`
	PurchaseNumber string          `json:"purchase_number"`
	StandID        *uint           `json:"stand_id"`
	StandName      string          `json:"stand_name"`
	SupplierID     uint            `json:"supplier_id"`
	SupplierName   string          `json:"supplier_name"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	Creator        string          `json:"creator"`
}

type CreatePurchaseResponse struct {
	Message        string `json:"message"`
	PurchaseID     uint   `json:"purchase_id"`
	PurchaseNumber string `json:"purchase_number"`
}
