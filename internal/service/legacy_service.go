package service

import (
	"context"

	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"
)

// SupplierService manages the legacy supplier table that products and
// purchases still point at.
type SupplierService interface {
	Create(ctx context.Context, actor Actor, req dto.SupplierRequest) (uint, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uint, req dto.SupplierRequest) error
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, actor Actor, req dto.SupplierRequest) (uint, error) {
	sup := &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Speciality:    req.Speciality,
		Status:        defaultString(req.Status, model.ContactStatusActive),
		CreatedBy:     uintPtr(actor.UserID),
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return 0, err
	}
	return sup.ID, nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, sup := range list {
		out = append(out, dto.SupplierResponse{
			ID:            sup.ID,
			Name:          sup.Name,
			ContactPerson: sup.ContactPerson,
			Email:         sup.Email,
			Phone:         sup.Phone,
			Address:       sup.Address,
			Speciality:    sup.Speciality,
			Status:        sup.Status,
			CreatedAt:     sup.CreatedAt,
		})
	}
	return out, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.SupplierRequest) error {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Supplier not found")
	}
	sup.Name = req.Name
	sup.ContactPerson = req.ContactPerson
	sup.Email = req.Email
	sup.Phone = req.Phone
	sup.Address = req.Address
	sup.Speciality = req.Speciality
	sup.Status = defaultString(req.Status, sup.Status)
	return s.repo.Update(ctx, sup)
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "Supplier not found")
	}
	return s.repo.Delete(ctx, id)
}

// ClientService manages the legacy client table referenced by stands.
type ClientService interface {
	Create(ctx context.Context, actor Actor, req dto.ClientRequest) (uint, error)
	List(ctx context.Context) ([]dto.ClientResponse, error)
	Update(ctx context.Context, id uint, req dto.ClientRequest) error
	Delete(ctx context.Context, id uint) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, actor Actor, req dto.ClientRequest) (uint, error) {
	c := &model.Client{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Company:       req.Company,
		Status:        defaultString(req.Status, model.ContactStatusActive),
		CreatedBy:     uintPtr(actor.UserID),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *clientService) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ClientResponse{
			ID:            c.ID,
			Name:          c.Name,
			ContactPerson: c.ContactPerson,
			Email:         c.Email,
			Phone:         c.Phone,
			Address:       c.Address,
			Company:       c.Company,
			Status:        c.Status,
			CreatedAt:     c.CreatedAt,
		})
	}
	return out, nil
}

func (s *clientService) Update(ctx context.Context, id uint, req dto.ClientRequest) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Client not found")
	}
	c.Name = req.Name
	c.ContactPerson = req.ContactPerson
	c.Email = req.Email
	c.Phone = req.Phone
	c.Address = req.Address
	c.Company = req.Company
	c.Status = defaultString(req.Status, c.Status)
	return s.repo.Update(ctx, c)
}

func (s *clientService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "Client not found")
	}
	return s.repo.Delete(ctx, id)
}
