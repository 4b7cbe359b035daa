package repository

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"gorm.io/gorm"
)

type PurchaseRepository interface {
	DB() *gorm.DB
	// Create inserts the purchase together with its items.
	Create(ctx context.Context, tx *gorm.DB, p *model.Purchase) error
	FindByID(ctx context.Context, id uint) (*model.Purchase, error)
	List(ctx context.Context) ([]model.Purchase, error)
	ListByStand(ctx context.Context, standID uint) ([]model.Purchase, error)
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) DB() *gorm.DB { return r.db }

func (r *purchaseRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Purchase) error {
	return translateError(session(ctx, r.db, tx).Omit("Stand", "Supplier", "Creator").Create(p).Error)
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uint) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Stand").
		Preload("Supplier").
		Preload("Creator").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Items.Product").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepo) List(ctx context.Context) ([]model.Purchase, error) {
	var list []model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Stand").
		Preload("Supplier").
		Preload("Creator").
		Order("id asc").
		Find(&list).Error
	return list, err
}

func (r *purchaseRepo) ListByStand(ctx context.Context, standID uint) ([]model.Purchase, error) {
	var list []model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Items.Product").
		Where("stand_id = ?", standID).
		Order("id asc").
		Find(&list).Error
	return list, err
}
