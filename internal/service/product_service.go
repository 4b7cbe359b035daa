package service

import (
	"context"
	"errors"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateProductRequest) (uint, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	cache      CatalogCache
}

func NewProductService(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	cache CatalogCache,
) ProductService {
	return &productService{repo: repo, categories: categories, suppliers: suppliers, cache: cacheOrNoop(cache)}
}

func (s *productService) Create(ctx context.Context, actor Actor, req dto.CreateProductRequest) (uint, error) {
	pricing, ok := model.ParsePricingType(req.PricingType)
	if !ok {
		return 0, apierror.Invalid("pricing_type must be 'Par Jour' or 'Forfait'")
	}
	if err := s.checkRefs(ctx, req.CategoryID, req.SupplierID); err != nil {
		return 0, err
	}

	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
		Unit:        req.Unit,
		Price:       req.Price,
		PricingType: pricing,
		CreatedBy:   uintPtr(actor.UserID),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return 0, err
	}
	invalidateCatalog(ctx, s.cache)
	return p.ID, nil
}

func (s *productService) checkRefs(ctx context.Context, categoryID, supplierID uint) error {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Invalid("Category not found")
		}
		return err
	}
	if _, err := s.suppliers.FindByID(ctx, supplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Invalid("Supplier not found")
		}
		return err
	}
	return nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	return cachedList(ctx, s.cache, cacheKeyProducts, func() ([]dto.ProductResponse, error) {
		list, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.ProductResponse, 0, len(list))
		for i := range list {
			out = append(out, toProductResponse(&list[i]))
		}
		return out, nil
	})
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Product not found")
	}

	setString(&p.Name, req.Name)
	setString(&p.Description, req.Description)
	setString(&p.Unit, req.Unit)
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.PricingType != nil {
		pricing, ok := model.ParsePricingType(*req.PricingType)
		if !ok {
			return apierror.Invalid("pricing_type must be 'Par Jour' or 'Forfait'")
		}
		p.PricingType = pricing
	}
	if req.CategoryID != nil {
		p.CategoryID = *req.CategoryID
	}
	if req.SupplierID != nil {
		p.SupplierID = *req.SupplierID
	}
	if req.CategoryID != nil || req.SupplierID != nil {
		if err := s.checkRefs(ctx, p.CategoryID, p.SupplierID); err != nil {
			return err
		}
	}

	p.Category, p.Supplier = nil, nil
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	invalidateCatalog(ctx, s.cache)
	return nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "Product not found")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateCatalog(ctx, s.cache)
	return nil
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		Unit:        p.Unit,
		Price:       p.Price,
		PricingType: p.PricingType,
		CreatedAt:   p.CreatedAt,
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	if p.Supplier != nil {
		resp.SupplierName = p.Supplier.Name
	}
	return resp
}
