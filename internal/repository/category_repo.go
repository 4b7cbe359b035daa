package repository

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository defines CRUD operations for Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	ProductCounts(ctx context.Context) (map[uint]int64, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	return translateError(r.db.WithContext(ctx).Create(c).Error)
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

func (r *categoryRepository) ProductCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		CategoryID uint
		Total      int64
	}
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("category_id, count(*) as total").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Total
	}
	return counts, nil
}

func (r *categoryRepository) Update(ctx context.Context, c *model.Category) error {
	return translateError(r.db.WithContext(ctx).Save(c).Error)
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Delete(&model.Category{}, id).Error)
}
