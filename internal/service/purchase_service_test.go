package service

import (
	"context"
	"testing"
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseSvc(f *fixture) PurchaseService {
	return NewPurchaseService(f.purchases, f.stands, f.suppliers, f.products, f.seq, f.cfg)
}

func TestPurchaseCreate_WithItemsSumsLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pinClock(t, time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC))
	sup := f.supplier(t, "Déco", "deco@test")
	plant := f.product(t, "Plante", sup.ID, "12", model.PricingPerDay)

	resp, err := newPurchaseSvc(f).Create(ctx, f.owner, dto.CreatePurchaseRequest{
		SupplierID:  sup.ID,
		TotalAmount: decPtr("1"),
		Items:       []dto.LineItemInput{{ProductID: plant.ID, Quantity: 3, Days: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "BC-2025-001", resp.PurchaseNumber)

	p, err := f.purchases.FindByID(ctx, resp.PurchaseID)
	require.NoError(t, err)
	assert.True(t, dec("72").Equal(p.TotalAmount), "got %s", p.TotalAmount)
	assert.Equal(t, "TND", p.Currency)
	assert.Len(t, p.Items, 1)
}

func TestPurchaseCreate_WithoutItemsKeepsTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sup := f.supplier(t, "Déco", "deco@test")

	resp, err := newPurchaseSvc(f).Create(ctx, f.owner, dto.CreatePurchaseRequest{
		SupplierID: sup.ID, TotalAmount: decPtr("350.5"), Currency: "EUR", Notes: "manual",
	})
	require.NoError(t, err)

	list, err := newPurchaseSvc(f).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, resp.PurchaseID, list[0].ID)
	assert.True(t, dec("350.5").Equal(list[0].TotalAmount))
	assert.Equal(t, "EUR", list[0].Currency)
	assert.Equal(t, "Déco", list[0].SupplierName)
	assert.Equal(t, "Owner", list[0].Creator)
}

func TestPurchaseCreate_UnknownSupplier(t *testing.T) {
	f := newFixture(t)
	_, err := newPurchaseSvc(f).Create(context.Background(), f.owner, dto.CreatePurchaseRequest{SupplierID: 5})
	assert.Equal(t, "Supplier not found", apierror.PublicMessage(err))
}

// Stand fan-out and direct creation share one counter.
func TestPurchaseNumbering_SharedWithStandFanOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pinClock(t, time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC))
	sup := f.supplier(t, "Déco", "deco@test")
	p := f.product(t, "Tapis", sup.ID, "20", model.PricingFlat)

	stand, err := newStandSvc(f).Create(ctx, f.owner, dto.CreateStandRequest{
		Name: "S", Items: []dto.LineItemInput{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Len(t, stand.PurchasesCreated, 1)
	assert.Equal(t, "BC-2025-001", stand.PurchasesCreated[0].PurchaseNumber)

	direct, err := newPurchaseSvc(f).Create(ctx, f.owner, dto.CreatePurchaseRequest{SupplierID: sup.ID, StandID: &stand.StandID})
	require.NoError(t, err)
	assert.Equal(t, "BC-2025-002", direct.PurchaseNumber)
}
