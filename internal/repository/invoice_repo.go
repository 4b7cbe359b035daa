package repository

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvoiceRepository interface {
	DB() *gorm.DB
	// Create inserts the invoice together with its items.
	Create(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error
	FindByID(ctx context.Context, id uint) (*model.Invoice, error)
	FindForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	Update(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error
	ReplaceItems(ctx context.Context, tx *gorm.DB, invoiceID uint, items []model.InvoiceItem) error
	ListItems(ctx context.Context, invoiceID uint) ([]model.InvoiceItem, error)
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) DB() *gorm.DB { return r.db }

func (r *invoiceRepo) Create(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error {
	return translateError(session(ctx, r.db, tx).Omit("Stand", "Contact").Create(inv).Error)
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uint) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Stand.Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Stand.Items.Product").
		Preload("Contact.Enterprise").
		First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) FindForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*model.Invoice, error) {
	var inv model.Invoice
	err := session(ctx, r.db, tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&inv, id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context) ([]model.Invoice, error) {
	var list []model.Invoice
	err := r.db.WithContext(ctx).Preload("Stand").Order("created_at desc, id desc").Find(&list).Error
	return list, err
}

func (r *invoiceRepo) Update(ctx context.Context, tx *gorm.DB, inv *model.Invoice) error {
	return translateError(session(ctx, r.db, tx).Omit(clause.Associations).Save(inv).Error)
}

func (r *invoiceRepo) ReplaceItems(ctx context.Context, tx *gorm.DB, invoiceID uint, items []model.InvoiceItem) error {
	db := session(ctx, r.db, tx)
	if err := db.Where("invoice_id = ?", invoiceID).Delete(&model.InvoiceItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].InvoiceID = invoiceID
	}
	return translateError(db.Create(&items).Error)
}

func (r *invoiceRepo) ListItems(ctx context.Context, invoiceID uint) ([]model.InvoiceItem, error) {
	var items []model.InvoiceItem
	err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).Order("id asc").Find(&items).Error
	return items, err
}
