package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"gorm.io/gorm"
)

type ContactService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateContactRequest) (uint, error)
	List(ctx context.Context, filter dto.ContactFilter) ([]dto.ContactResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateContactRequest) error
	Delete(ctx context.Context, id uint) error
	ListEnterprises(ctx context.Context) ([]dto.ContactResponse, error)
	ListEmployees(ctx context.Context, enterpriseID uint) ([]dto.EmployeeResponse, error)
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// normalizeContactType folds the English "supplier" spelling into the
// stored value and applies the client default.
func normalizeContactType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "":
		return model.ContactTypeClient
	case "supplier":
		return model.ContactTypeSupplier
	}
	return strings.ToLower(strings.TrimSpace(t))
}

func normalizeFilter(f dto.ContactFilter) dto.ContactFilter {
	if f.Type != "" && f.Type != "all" {
		f.Type = normalizeContactType(f.Type)
	}
	return f
}

func (s *contactService) Create(ctx context.Context, actor Actor, req dto.CreateContactRequest) (uint, error) {
	c := &model.Contact{
		Name:             strings.TrimSpace(req.Name),
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		ContactType:      normalizeContactType(req.ContactType),
		ContactNature:    defaultString(req.ContactNature, model.ContactNaturePerson),
		Status:           defaultString(req.Status, model.ContactStatusActive),
		Notes:            req.Notes,
		MatriculeFiscal:  req.MatriculeFiscal,
		CodeTVA:          req.CodeTVA,
		CodeDouane:       req.CodeDouane,
		RegistreCommerce: req.RegistreCommerce,
		LegalForm:        req.LegalForm,
		Capital:          req.Capital.Value,
		Website:          req.Website,
		EnterpriseID:     req.EnterpriseID,
		Position:         req.Position,
		ContactPerson:    req.ContactPerson,
		Company:          req.Company,
		Speciality:       req.Speciality,
		CreatedBy:        uintPtr(actor.UserID),
	}
	if err := s.checkEnterpriseLink(ctx, c); err != nil {
		return 0, err
	}
	if err := s.repo.Create(ctx, nil, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// checkEnterpriseLink keeps the person/enterprise field groups consistent:
// enterprises never belong to another contact and a person's enterprise
// must be an enterprise contact.
func (s *contactService) checkEnterpriseLink(ctx context.Context, c *model.Contact) error {
	if c.IsEnterprise() {
		c.EnterpriseID = nil
		c.Enterprise = nil
		return nil
	}
	if c.EnterpriseID == nil || *c.EnterpriseID == 0 {
		c.EnterpriseID = nil
		return nil
	}
	if c.ID != 0 && *c.EnterpriseID == c.ID {
		return apierror.Invalid("A contact cannot belong to itself")
	}
	ent, err := s.repo.FindByID(ctx, *c.EnterpriseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Invalid("Enterprise not found")
		}
		return err
	}
	if !ent.IsEnterprise() {
		return apierror.Invalid("Contact is not an enterprise")
	}
	c.Enterprise = nil
	return nil
}

func (s *contactService) List(ctx context.Context, filter dto.ContactFilter) ([]dto.ContactResponse, error) {
	list, err := s.repo.List(ctx, normalizeFilter(filter))
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, list)
}

func (s *contactService) Update(ctx context.Context, id uint, req dto.UpdateContactRequest) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "Contact not found")
	}

	setString(&c.Name, req.Name)
	setString(&c.Email, req.Email)
	setString(&c.Phone, req.Phone)
	setString(&c.Address, req.Address)
	setString(&c.ContactNature, req.ContactNature)
	setString(&c.Status, req.Status)
	setString(&c.Notes, req.Notes)
	setString(&c.MatriculeFiscal, req.MatriculeFiscal)
	setString(&c.CodeTVA, req.CodeTVA)
	setString(&c.CodeDouane, req.CodeDouane)
	setString(&c.RegistreCommerce, req.RegistreCommerce)
	setString(&c.LegalForm, req.LegalForm)
	setString(&c.Website, req.Website)
	setString(&c.Position, req.Position)
	setString(&c.ContactPerson, req.ContactPerson)
	setString(&c.Company, req.Company)
	setString(&c.Speciality, req.Speciality)
	if req.ContactType != nil {
		c.ContactType = normalizeContactType(*req.ContactType)
	}
	if req.Capital != nil {
		c.Capital = req.Capital.Value
	}
	if req.EnterpriseID != nil {
		c.EnterpriseID = req.EnterpriseID
	}

	if err := s.checkEnterpriseLink(ctx, c); err != nil {
		return err
	}
	return s.repo.Update(ctx, c)
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "Contact not found")
	}
	return s.repo.Delete(ctx, id)
}

func (s *contactService) ListEnterprises(ctx context.Context) ([]dto.ContactResponse, error) {
	list, err := s.repo.ListEnterprises(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, list)
}

func (s *contactService) ListEmployees(ctx context.Context, enterpriseID uint) ([]dto.EmployeeResponse, error) {
	ent, err := s.repo.FindByID(ctx, enterpriseID)
	if err != nil {
		return nil, notFound(err, "Contact not found")
	}
	if !ent.IsEnterprise() {
		return nil, apierror.Invalid("Contact is not an enterprise")
	}

	employees, err := s.repo.ListEmployees(ctx, enterpriseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, dto.EmployeeResponse{
			ID:       e.ID,
			Name:     e.Name,
			Position: e.Position,
			Email:    e.Email,
			Phone:    e.Phone,
		})
	}
	return out, nil
}

func (s *contactService) toResponses(ctx context.Context, list []model.Contact) ([]dto.ContactResponse, error) {
	var enterpriseIDs []uint
	for _, c := range list {
		if c.IsEnterprise() {
			enterpriseIDs = append(enterpriseIDs, c.ID)
		}
	}
	counts, err := s.repo.CountEmployees(ctx, enterpriseIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ContactResponse, 0, len(list))
	for i := range list {
		out = append(out, toContactResponse(&list[i], counts[list[i].ID]))
	}
	return out, nil
}

func toContactResponse(c *model.Contact, employees int64) dto.ContactResponse {
	createdAt := c.CreatedAt
	resp := dto.ContactResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		ContactType:   c.ContactType,
		ContactNature: c.ContactNature,
		Status:        c.Status,
		Notes:         c.Notes,
		CreatedAt:     &createdAt,
		ContactPerson: c.ContactPerson,
		Company:       c.Company,
		Speciality:    c.Speciality,
	}
	if c.CreatedAt.IsZero() {
		resp.CreatedAt = nil
	}

	if c.IsEnterprise() {
		resp.EnterpriseDetails = &dto.EnterpriseDetails{
			MatriculeFiscal:  c.MatriculeFiscal,
			CodeTVA:          c.CodeTVA,
			CodeDouane:       c.CodeDouane,
			RegistreCommerce: c.RegistreCommerce,
			LegalForm:        c.LegalForm,
			Capital:          c.Capital,
			Website:          c.Website,
			EmployeesCount:   employees,
		}
		return resp
	}

	person := &dto.PersonDetails{EnterpriseID: c.EnterpriseID, Position: c.Position}
	if c.Enterprise != nil {
		name := c.Enterprise.Name
		person.EnterpriseName = &name
	}
	resp.PersonDetails = person
	return resp
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
