package service

import (
	"context"
	"testing"

	"github.com/Mouhib912/Event-Management-Platform/internal/config"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"
	"github.com/Mouhib912/Event-Management-Platform/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture bundles a migrated SQLite database with every repository.
type fixture struct {
	db        *gorm.DB
	cfg       *config.Config
	users     repository.UserRepository
	contacts  repository.ContactRepository
	clients   repository.ClientRepository
	suppliers repository.SupplierRepository
	cats      repository.CategoryRepository
	products  repository.ProductRepository
	stands    repository.StandRepository
	purchases repository.PurchaseRepository
	invoices  repository.InvoiceRepository
	seq       repository.SequenceRepository
	owner     Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{
		db:        db,
		cfg:       testutil.Config(),
		users:     repository.NewUserRepository(db),
		contacts:  repository.NewContactRepository(db),
		clients:   repository.NewClientRepository(db),
		suppliers: repository.NewSupplierRepository(db),
		cats:      repository.NewCategoryRepository(db),
		products:  repository.NewProductRepository(db),
		stands:    repository.NewStandRepository(db),
		purchases: repository.NewPurchaseRepository(db),
		invoices:  repository.NewInvoiceRepository(db),
		seq:       repository.NewSequenceRepository(db),
	}

	u := &model.User{Email: "owner@events.test", PasswordHash: "x", Name: "Owner", Role: model.RoleOwner}
	require.NoError(t, f.users.Create(context.Background(), u))
	f.owner = Actor{UserID: u.ID, Name: u.Name, Role: u.Role}
	return f
}

func (f *fixture) supplier(t *testing.T, name, email string) *model.Supplier {
	t.Helper()
	s := &model.Supplier{Name: name, Email: email, Status: "Actif"}
	require.NoError(t, f.suppliers.Create(context.Background(), s))
	return s
}

func (f *fixture) client(t *testing.T, name string) *model.Client {
	t.Helper()
	c := &model.Client{Name: name, Email: "contact@" + name + ".test", Status: "Actif"}
	require.NoError(t, f.clients.Create(context.Background(), c))
	return c
}

func (f *fixture) product(t *testing.T, name string, supplierID uint, price string, pricing string) *model.Product {
	t.Helper()
	cat := &model.Category{Name: "Cat " + name, Color: model.DefaultCategoryColor}
	require.NoError(t, f.cats.Create(context.Background(), cat))
	p := &model.Product{
		Name:        name,
		CategoryID:  cat.ID,
		SupplierID:  supplierID,
		Unit:        "pièce",
		Price:       decimal.RequireFromString(price),
		PricingType: pricing,
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

// draftStand inserts a stand directly, bypassing the creation endpoint
// which always approves.
func (f *fixture) draftStand(t *testing.T, name string) *model.Stand {
	t.Helper()
	st := &model.Stand{
		Name:        name,
		Status:      model.StandDraft,
		TotalAmount: decimal.Zero,
		Currency:    "TND",
		CreatedBy:   uintPtr(f.owner.UserID),
	}
	require.NoError(t, f.stands.Create(context.Background(), nil, st))
	return st
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
