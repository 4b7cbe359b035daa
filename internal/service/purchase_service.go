package service

import (
	"context"
	"errors"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/config"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseService interface {
	Create(ctx context.Context, actor Actor, req dto.CreatePurchaseRequest) (*dto.CreatePurchaseResponse, error)
	List(ctx context.Context) ([]dto.PurchaseResponse, error)
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	stands    repository.StandRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	seq       repository.SequenceRepository
	cfg       *config.Config
}

func NewPurchaseService(
	purchases repository.PurchaseRepository,
	stands repository.StandRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	seq repository.SequenceRepository,
	cfg *config.Config,
) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		stands:    stands,
		suppliers: suppliers,
		products:  products,
		seq:       seq,
		cfg:       cfg,
	}
}

// Create records a purchase order entered by hand. With items the total is
// their sum; without items the submitted total_amount is kept as is.
func (s *purchaseService) Create(ctx context.Context, actor Actor, req dto.CreatePurchaseRequest) (*dto.CreatePurchaseResponse, error) {
	if _, err := s.suppliers.FindByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Invalid("Supplier not found")
		}
		return nil, err
	}

	currency := req.Currency
	if req.StandID != nil {
		stand, err := s.stands.FindByID(ctx, *req.StandID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.Invalid("Stand not found")
			}
			return nil, err
		}
		currency = defaultString(currency, stand.Currency)
	}
	currency = defaultString(currency, s.cfg.DefaultCurrency)

	total := decimalOr(req.TotalAmount, decimal.Zero)
	var items []model.PurchaseItem
	if len(req.Items) > 0 {
		lines, sum, err := priceLines(ctx, s.products, req.Items)
		if err != nil {
			return nil, err
		}
		items = purchaseItems(lines)
		total = sum
	}

	p := &model.Purchase{
		StandID:     req.StandID,
		SupplierID:  req.SupplierID,
		TotalAmount: total,
		Currency:    currency,
		Status:      model.PurchasePending,
		Notes:       req.Notes,
		CreatedBy:   uintPtr(actor.UserID),
		Items:       items,
	}
	err := runTx(ctx, s.purchases.DB(), func(tx *gorm.DB) error {
		number, err := nextPurchaseNumber(ctx, s.seq, tx, timeNow())
		if err != nil {
			return err
		}
		p.PurchaseNumber = number
		return s.purchases.Create(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatePurchaseResponse{
		Message:        "Purchase created successfully",
		PurchaseID:     p.ID,
		PurchaseNumber: p.PurchaseNumber,
	}, nil
}

func (s *purchaseService) List(ctx context.Context) ([]dto.PurchaseResponse, error) {
	list, err := s.purchases.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		r := dto.PurchaseResponse{
			ID:             p.ID,
			PurchaseNumber: p.PurchaseNumber,
			StandID:        p.StandID,
			SupplierID:     p.SupplierID,
			TotalAmount:    p.TotalAmount,
			Currency:       p.Currency,
			Status:         p.Status,
			Notes:          p.Notes,
			CreatedAt:      p.CreatedAt,
		}
		if p.Stand != nil {
			r.StandName = p.Stand.Name
		}
		if p.Supplier != nil {
			r.SupplierName = p.Supplier.Name
		}
		if p.Creator != nil {
			r.Creator = p.Creator.Name
		}
		out = append(out, r)
	}
	return out, nil
}
