package service

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"
)

type CategoryService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateCategoryRequest) (uint, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) error
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache CatalogCache
}

// NewCategoryService builds the category service. cache may be nil.
func NewCategoryService(repo repository.CategoryRepository, cache CatalogCache) CategoryService {
	return &categoryService{repo: repo, cache: cacheOrNoop(cache)}
}

func (s *categoryService) Create(ctx context.Context, actor Actor, req dto.CreateCategoryRequest) (uint, error) {
	c := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       defaultString(req.Color, model.DefaultCategoryColor),
		CreatedBy:   uintPtr(actor.UserID),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return 0, err
	}
	invalidateCatalog(ctx, s.cache)
	return c.ID, nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	return cachedList(ctx, s.cache, cacheKeyCategories, func() ([]dto.CategoryResponse, error) {
		list, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		counts, err := s.repo.ProductCounts(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CategoryResponse, 0, len(list))
		for _, c := range list {
			out = append(out, dto.CategoryResponse{
				ID:           c.ID,
				Name:         c.Name,
				Description:  c.Description,
				Color:        c.Color,
				ProductCount: counts[c.ID],
				CreatedAt:    c.CreatedAt,
			})
		}
		return out, nil
	})
}

func (s *categoryService) Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Category not found")
	}
	setString(&c.Name, req.Name)
	setString(&c.Description, req.Description)
	if req.Color != nil {
		c.Color = defaultString(*req.Color, model.DefaultCategoryColor)
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}
	invalidateCatalog(ctx, s.cache)
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "Category not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateCatalog(ctx, s.cache)
	return nil
}
