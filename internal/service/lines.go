package service

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/billing"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"github.com/shopspring/decimal"
)

// pricedLine is a validated stand or purchase line with its product.
type pricedLine struct {
	Product   model.Product
	Quantity  int
	Days      int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// priceLines resolves every product and computes the line totals. A zero
// unit price takes the product's current price.
func priceLines(ctx context.Context, products repository.ProductRepository, items []dto.LineItemInput) ([]pricedLine, decimal.Decimal, error) {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	byID, err := products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	lines := make([]pricedLine, 0, len(items))
	totals := make([]decimal.Decimal, 0, len(items))
	for i, it := range items {
		days := it.Days
		if days == 0 {
			days = 1
		}
		in := lineInput{ProductID: it.ProductID, Quantity: it.Quantity, Days: days, UnitPrice: it.UnitPrice, Factor: billing.DefaultFactor}
		if err := checkLine(i, in); err != nil {
			return nil, decimal.Zero, err
		}
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, decimal.Zero, productNotFound(it.ProductID)
		}
		price := it.UnitPrice
		if price.IsZero() {
			price = p.Price
		}
		total := billing.LineTotal(price, it.Quantity, days, p.IsPerDay(), billing.DefaultFactor)
		lines = append(lines, pricedLine{Product: p, Quantity: it.Quantity, Days: days, UnitPrice: price, Total: total})
		totals = append(totals, total)
	}
	return lines, billing.Sum(totals), nil
}

func standItems(lines []pricedLine) []model.StandItem {
	items := make([]model.StandItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.StandItem{
			ProductID:  l.Product.ID,
			Quantity:   l.Quantity,
			Days:       l.Days,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.Total,
		})
	}
	return items
}

func purchaseItems(lines []pricedLine) []model.PurchaseItem {
	items := make([]model.PurchaseItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.PurchaseItem{
			ProductID:  l.Product.ID,
			Quantity:   l.Quantity,
			Days:       l.Days,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.Total,
		})
	}
	return items
}

// supplierGroup is the slice of a stand's lines ordered from one supplier.
type supplierGroup struct {
	SupplierID uint
	Lines      []pricedLine
	Total      decimal.Decimal
}

// groupBySupplier keeps suppliers in order of first appearance.
func groupBySupplier(lines []pricedLine) []supplierGroup {
	index := make(map[uint]int)
	var groups []supplierGroup
	for _, l := range lines {
		i, ok := index[l.Product.SupplierID]
		if !ok {
			i = len(groups)
			index[l.Product.SupplierID] = i
			groups = append(groups, supplierGroup{SupplierID: l.Product.SupplierID, Total: decimal.Zero})
		}
		groups[i].Lines = append(groups[i].Lines, l)
		groups[i].Total = groups[i].Total.Add(l.Total)
	}
	return groups
}
