package repository

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	// FindByIDs returns the requested products keyed by id; missing ids are absent.
	FindByIDs(ctx context.Context, ids []uint) (map[uint]model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uint) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return translateError(r.db.WithContext(ctx).Omit("Category", "Supplier").Create(p).Error)
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Category").Preload("Supplier").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]model.Product, error) {
	out := make(map[uint]model.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var list []model.Product
	if err := r.db.WithContext(ctx).Preload("Supplier").Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).Preload("Category").Preload("Supplier").Order("name asc").Find(&list).Error
	return list, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return translateError(r.db.WithContext(ctx).Omit("Category", "Supplier").Save(p).Error)
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Delete(&model.Product{}, id).Error)
}
