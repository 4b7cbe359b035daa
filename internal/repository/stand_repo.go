package repository

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StandRepository interface {
	DB() *gorm.DB
	// Create inserts the stand together with its items.
	Create(ctx context.Context, tx *gorm.DB, s *model.Stand) error
	FindByID(ctx context.Context, id uint) (*model.Stand, error)
	// FindForUpdate loads the stand row and locks it until tx ends.
	FindForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*model.Stand, error)
	List(ctx context.Context, status string) ([]model.Stand, error)
	Update(ctx context.Context, tx *gorm.DB, s *model.Stand) error
	ReplaceItems(ctx context.Context, tx *gorm.DB, standID uint, items []model.StandItem) error
	ListItems(ctx context.Context, standID uint) ([]model.StandItem, error)
}

type standRepo struct{ db *gorm.DB }

func NewStandRepository(db *gorm.DB) StandRepository { return &standRepo{db: db} }

func (r *standRepo) DB() *gorm.DB { return r.db }

func (r *standRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Stand) error {
	return translateError(session(ctx, r.db, tx).Omit("Client", "Creator").Create(s).Error)
}

func (r *standRepo) FindByID(ctx context.Context, id uint) (*model.Stand, error) {
	var s model.Stand
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Creator").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Items.Product.Category").
		Preload("Items.Product.Supplier").
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *standRepo) FindForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*model.Stand, error) {
	var s model.Stand
	err := session(ctx, r.db, tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *standRepo) List(ctx context.Context, status string) ([]model.Stand, error) {
	q := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Items.Product.Category").
		Preload("Items.Product.Supplier")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []model.Stand
	err := q.Order("id asc").Find(&list).Error
	return list, err
}

func (r *standRepo) Update(ctx context.Context, tx *gorm.DB, s *model.Stand) error {
	return translateError(session(ctx, r.db, tx).Omit(clause.Associations).Save(s).Error)
}

func (r *standRepo) ReplaceItems(ctx context.Context, tx *gorm.DB, standID uint, items []model.StandItem) error {
	db := session(ctx, r.db, tx)
	if err := db.Where("stand_id = ?", standID).Delete(&model.StandItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].StandID = standID
	}
	return translateError(db.Omit("Product").Create(&items).Error)
}

func (r *standRepo) ListItems(ctx context.Context, standID uint) ([]model.StandItem, error) {
	var items []model.StandItem
	err := r.db.WithContext(ctx).Preload("Product").Where("stand_id = ?", standID).Order("id asc").Find(&items).Error
	return items, err
}
