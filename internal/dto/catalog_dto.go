package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Categories ────────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description"`
	Color       string `json:"color"       validate:"max=20"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Color       *string `json:"color"       validate:"omitempty,max=20"`
}

type CategoryResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Color        string    `json:"color"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// ── Products ──────────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string          `json:"name"         validate:"required,max=100"`
	Description string          `json:"description"`
	CategoryID  uint            `json:"category_id"  validate:"required"`
	SupplierID  uint            `json:"supplier_id"  validate:"required"`
	Unit        string          `json:"unit"         validate:"required,max=20"`
	Price       decimal.Decimal `json:"price"        validate:"min=0"`
	PricingType string          `json:"pricing_type" validate:"required"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"         validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description"`
	CategoryID  *uint            `json:"category_id"`
	SupplierID  *uint            `json:"supplier_id"`
	Unit        *string          `json:"unit"         validate:"omitempty,min=1,max=20"`
	Price       *decimal.Decimal `json:"price"        validate:"omitempty,min=0"`
	PricingType *string          `json:"pricing_type"`
}

type ProductResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	SupplierID   uint            `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Unit         string          `json:"unit"`
	Price        decimal.Decimal `json:"price"`
	PricingType  string          `json:"pricing_type"`
	CreatedAt    time.Time       `json:"created_at"`
}
