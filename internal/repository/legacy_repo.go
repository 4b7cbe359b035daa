package repository

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"gorm.io/gorm"
)

// ClientRepository covers the legacy clients table.
type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uint) error
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return translateError(r.db.WithContext(ctx).Create(c).Error)
}

func (r *clientRepo) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	var c model.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var list []model.Client
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *clientRepo) Update(ctx context.Context, c *model.Client) error {
	return translateError(r.db.WithContext(ctx).Save(c).Error)
}

func (r *clientRepo) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Delete(&model.Client{}, id).Error)
}

// SupplierRepository covers the legacy suppliers table.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id uint) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
	Delete(ctx context.Context, id uint) error
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return translateError(r.db.WithContext(ctx).Create(s).Error)
}

func (r *supplierRepo) FindByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var list []model.Supplier
	err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return translateError(r.db.WithContext(ctx).Save(s).Error)
}

func (r *supplierRepo) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Delete(&model.Supplier{}, id).Error)
}
