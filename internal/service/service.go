package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// timeNow is swapped in tests that pin document dates.
var timeNow = time.Now

// Actor is the authenticated user on whose behalf a service call runs.
type Actor struct {
	UserID uint
	Name   string
	Role   string
}

// HasRole compares the actor's canonical role against roles.
func (a Actor) HasRole(roles ...string) bool {
	role := model.CanonicalRole(a.Role)
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// notFound turns gorm.ErrRecordNotFound into a NotFound error carrying msg.
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(msg)
	}
	return err
}

func uintPtr(v uint) *uint { return &v }

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func decimalOr(v *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if v == nil {
		return fallback
	}
	return *v
}

// lineInput is the common shape of stand, purchase and invoice lines.
type lineInput struct {
	ProductID uint
	Quantity  int
	Days      int
	UnitPrice decimal.Decimal
	Factor    decimal.Decimal
}

// checkLine rejects quantities, days, prices and factors out of range.
func checkLine(idx int, l lineInput) error {
	switch {
	case l.ProductID == 0:
		return apierror.Invalid(fmt.Sprintf("Item %d: product_id is required", idx+1))
	case l.Quantity < 1:
		return apierror.Invalid(fmt.Sprintf("Item %d: quantity must be at least 1", idx+1))
	case l.Days < 1:
		return apierror.Invalid(fmt.Sprintf("Item %d: days must be at least 1", idx+1))
	case l.UnitPrice.IsNegative():
		return apierror.Invalid(fmt.Sprintf("Item %d: unit_price cannot be negative", idx+1))
	case !l.Factor.IsPositive():
		return apierror.Invalid(fmt.Sprintf("Item %d: factor must be positive", idx+1))
	}
	return nil
}

func productNotFound(id uint) error {
	return apierror.Invalid(fmt.Sprintf("Product %d not found", id))
}
