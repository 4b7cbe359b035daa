package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/config"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"gorm.io/gorm"
)

// StandService assembles stands, fans their lines out into supplier
// purchase orders and drives the approval workflow.
type StandService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateStandRequest) (*dto.CreateStandResponse, error)
	List(ctx context.Context, actor Actor) ([]dto.StandResponse, error)
	Update(ctx context.Context, actor Actor, id uint, req dto.UpdateStandRequest) error
	ListItems(ctx context.Context, id uint) ([]dto.StandItemResponse, error)
	ReplaceItems(ctx context.Context, actor Actor, id uint, req dto.ReplaceStandItemsRequest) error
	ValidateLogistics(ctx context.Context, actor Actor, id uint) (*dto.WorkflowResponse, error)
	ValidateFinance(ctx context.Context, actor Actor, id uint) (*dto.WorkflowResponse, error)
}

type standService struct {
	stands    repository.StandRepository
	purchases repository.PurchaseRepository
	products  repository.ProductRepository
	clients   repository.ClientRepository
	seq       repository.SequenceRepository
	cfg       *config.Config
}

func NewStandService(
	stands repository.StandRepository,
	purchases repository.PurchaseRepository,
	products repository.ProductRepository,
	clients repository.ClientRepository,
	seq repository.SequenceRepository,
	cfg *config.Config,
) StandService {
	return &standService{
		stands:    stands,
		purchases: purchases,
		products:  products,
		clients:   clients,
		seq:       seq,
		cfg:       cfg,
	}
}

func (s *standService) Create(ctx context.Context, actor Actor, req dto.CreateStandRequest) (*dto.CreateStandResponse, error) {
	if err := s.checkClient(ctx, req.ClientID); err != nil {
		return nil, err
	}
	lines, total, err := priceLines(ctx, s.products, req.Items)
	if err != nil {
		return nil, err
	}

	currency := defaultString(req.Currency, s.cfg.DefaultCurrency)
	stand := &model.Stand{
		Name:        req.Name,
		Description: req.Description,
		ClientID:    req.ClientID,
		Status:      model.StandApproved,
		TotalAmount: total,
		Currency:    currency,
		CreatedBy:   uintPtr(actor.UserID),
		Items:       standItems(lines),
	}

	var created []dto.PurchaseRef
	err = runTx(ctx, s.stands.DB(), func(tx *gorm.DB) error {
		if err := s.stands.Create(ctx, tx, stand); err != nil {
			return err
		}
		now := timeNow()
		for _, g := range groupBySupplier(lines) {
			number, err := nextPurchaseNumber(ctx, s.seq, tx, now)
			if err != nil {
				return err
			}
			p := &model.Purchase{
				StandID:        uintPtr(stand.ID),
				PurchaseNumber: number,
				SupplierID:     g.SupplierID,
				TotalAmount:    g.Total,
				Currency:       currency,
				Status:         model.PurchasePending,
				Notes:          fmt.Sprintf("Auto-generated from stand: %s", stand.Name),
				CreatedBy:      uintPtr(actor.UserID),
				Items:          purchaseItems(g.Lines),
			}
			if err := s.purchases.Create(ctx, tx, p); err != nil {
				return err
			}
			created = append(created, dto.PurchaseRef{ID: p.ID, PurchaseNumber: p.PurchaseNumber, SupplierID: p.SupplierID})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created == nil {
		created = []dto.PurchaseRef{}
	}
	msg := "Stand created successfully"
	if n := len(created); n > 0 {
		msg = fmt.Sprintf("Stand created successfully with %d purchase order(s)", n)
	}
	return &dto.CreateStandResponse{Message: msg, StandID: stand.ID, PurchasesCreated: created}, nil
}

func (s *standService) checkClient(ctx context.Context, clientID *uint) error {
	if clientID == nil {
		return nil
	}
	if _, err := s.clients.FindByID(ctx, *clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Invalid("Client not found")
		}
		return err
	}
	return nil
}

func (s *standService) List(ctx context.Context, actor Actor) ([]dto.StandResponse, error) {
	status := ""
	if actor.HasRole(model.RoleVisitor) {
		status = model.StandApproved
	}
	list, err := s.stands.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StandResponse, 0, len(list))
	for i := range list {
		out = append(out, toStandResponse(&list[i]))
	}
	return out, nil
}

// checkEditable lets the stand's creator, owners and commercials edit it.
func checkEditable(actor Actor, stand *model.Stand) error {
	if stand.CreatedBy != nil && *stand.CreatedBy == actor.UserID {
		return nil
	}
	if actor.HasRole(model.RoleOwner, model.RoleCommercial) {
		return nil
	}
	return apierror.Forbidden("Access denied")
}

func (s *standService) Update(ctx context.Context, actor Actor, id uint, req dto.UpdateStandRequest) error {
	stand, err := s.stands.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Stand not found")
	}
	if err := checkEditable(actor, stand); err != nil {
		return err
	}
	if err := s.checkClient(ctx, req.ClientID.Value); err != nil {
		return err
	}

	setString(&stand.Name, req.Name)
	setString(&stand.Description, req.Description)
	if req.ClientID.Set {
		stand.ClientID = req.ClientID.Value
		stand.Client = nil
	}
	return s.stands.Update(ctx, nil, stand)
}

func (s *standService) ListItems(ctx context.Context, id uint) ([]dto.StandItemResponse, error) {
	stand, err := s.stands.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Stand not found")
	}
	return toStandItemResponses(stand.Items), nil
}

// ReplaceItems swaps the stand's lines and recomputes its total. The
// workflow status and the purchases already issued are left alone.
func (s *standService) ReplaceItems(ctx context.Context, actor Actor, id uint, req dto.ReplaceStandItemsRequest) error {
	stand, err := s.stands.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Stand not found")
	}
	if err := checkEditable(actor, stand); err != nil {
		return err
	}
	lines, total, err := priceLines(ctx, s.products, req.Items)
	if err != nil {
		return err
	}

	return runTx(ctx, s.stands.DB(), func(tx *gorm.DB) error {
		locked, err := s.stands.FindForUpdate(ctx, tx, id)
		if err != nil {
			return notFound(err, "Stand not found")
		}
		if err := s.stands.ReplaceItems(ctx, tx, id, standItems(lines)); err != nil {
			return err
		}
		locked.TotalAmount = total
		return s.stands.Update(ctx, tx, locked)
	})
}

func (s *standService) ValidateLogistics(ctx context.Context, actor Actor, id uint) (*dto.WorkflowResponse, error) {
	if !actor.HasRole(model.RoleOwner, model.RoleLogistics) {
		return nil, apierror.Forbidden("Access denied")
	}
	status, err := s.validate(ctx, id, func(st *model.Stand) {
		st.ValidatedLogisticsBy = uintPtr(actor.UserID)
		st.Status = statusAfterLogistics(st.Status)
	})
	if err != nil {
		return nil, err
	}
	return &dto.WorkflowResponse{Message: "Logistics validation completed", Status: status}, nil
}

func (s *standService) ValidateFinance(ctx context.Context, actor Actor, id uint) (*dto.WorkflowResponse, error) {
	if !actor.HasRole(model.RoleOwner, model.RoleFinance) {
		return nil, apierror.Forbidden("Access denied")
	}
	status, err := s.validate(ctx, id, func(st *model.Stand) {
		st.ValidatedFinanceBy = uintPtr(actor.UserID)
		st.Status = statusAfterFinance(st.Status)
	})
	if err != nil {
		return nil, err
	}
	return &dto.WorkflowResponse{Message: "Finance validation completed", Status: status}, nil
}

// validate applies one workflow step under a row lock and returns the
// resulting status.
func (s *standService) validate(ctx context.Context, id uint, step func(*model.Stand)) (string, error) {
	var status string
	err := runTx(ctx, s.stands.DB(), func(tx *gorm.DB) error {
		stand, err := s.stands.FindForUpdate(ctx, tx, id)
		if err != nil {
			return notFound(err, "Stand not found")
		}
		step(stand)
		status = stand.Status
		return s.stands.Update(ctx, tx, stand)
	})
	return status, err
}

func toStandResponse(st *model.Stand) dto.StandResponse {
	resp := dto.StandResponse{
		ID:                   st.ID,
		Name:                 st.Name,
		Description:          st.Description,
		ClientID:             st.ClientID,
		Status:               st.Status,
		TotalAmount:          st.TotalAmount,
		Total:                st.TotalAmount,
		Currency:             st.Currency,
		CreatedAt:            st.CreatedAt,
		ValidatedLogisticsBy: st.ValidatedLogisticsBy,
		ValidatedFinanceBy:   st.ValidatedFinanceBy,
		Items:                toStandItemResponses(st.Items),
	}
	if st.Creator != nil {
		resp.Creator = st.Creator.Name
	}
	return resp
}

func toStandItemResponses(items []model.StandItem) []dto.StandItemResponse {
	out := make([]dto.StandItemResponse, 0, len(items))
	for _, it := range items {
		r := dto.StandItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			Days:       it.Days,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		}
		if p := it.Product; p != nil {
			r.ProductName = p.Name
			if p.Category != nil {
				r.CategoryName = p.Category.Name
			}
			if p.Supplier != nil {
				r.SupplierName = p.Supplier.Name
			}
		}
		out = append(out, r)
	}
	return out
}
