package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// BackfillService folds the legacy client and supplier tables into
// contacts. Running it again only skips what it already copied.
type BackfillService interface {
	Run(ctx context.Context) (*dto.BackfillResult, error)
}

type backfillService struct {
	contacts  repository.ContactRepository
	clients   repository.ClientRepository
	suppliers repository.SupplierRepository
}

func NewBackfillService(
	contacts repository.ContactRepository,
	clients repository.ClientRepository,
	suppliers repository.SupplierRepository,
) BackfillService {
	return &backfillService{contacts: contacts, clients: clients, suppliers: suppliers}
}

func (s *backfillService) Run(ctx context.Context) (*dto.BackfillResult, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}

	supplierByName := make(map[string]model.Supplier, len(suppliers))
	for _, sup := range suppliers {
		supplierByName[nameKey(sup.Name)] = sup
	}

	res := &dto.BackfillResult{}
	merged := make(map[string]bool)
	err = runTx(ctx, s.contacts.DB(), func(tx *gorm.DB) error {
		for _, c := range clients {
			contact := contactFromClient(c)
			if sup, ok := supplierByName[nameKey(c.Name)]; ok {
				mergeSupplier(contact, sup)
				merged[nameKey(c.Name)] = true
			}
			created, err := s.insertOnce(ctx, tx, contact)
			if err != nil {
				return err
			}
			switch {
			case !created:
				res.Skipped++
			case contact.ContactType == model.ContactTypeBoth:
				res.Merged++
			default:
				res.Clients++
			}
		}

		for _, sup := range suppliers {
			if merged[nameKey(sup.Name)] {
				continue
			}
			created, err := s.insertOnce(ctx, tx, contactFromSupplier(sup))
			if err != nil {
				return err
			}
			if created {
				res.Suppliers++
			} else {
				res.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("clients", res.Clients).
		Int("suppliers", res.Suppliers).
		Int("merged", res.Merged).
		Int("skipped", res.Skipped).
		Msg("contacts backfill finished")
	return res, nil
}

// insertOnce creates c unless a contact with the same name exists.
func (s *backfillService) insertOnce(ctx context.Context, tx *gorm.DB, c *model.Contact) (bool, error) {
	_, err := s.contacts.FindByName(ctx, tx, c.Name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.contacts.Create(ctx, tx, c); err != nil {
		return false, err
	}
	return true, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func legacyNature(company, contactPerson string) string {
	if company != "" || contactPerson != "" {
		return model.ContactNatureEnterprise
	}
	return model.ContactNaturePerson
}

func contactFromClient(c model.Client) *model.Contact {
	return &model.Contact{
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		ContactType:   model.ContactTypeClient,
		ContactNature: legacyNature(c.Company, c.ContactPerson),
		Status:        defaultString(c.Status, model.ContactStatusActive),
		ContactPerson: c.ContactPerson,
		Company:       c.Company,
		CreatedBy:     c.CreatedBy,
		CreatedAt:     c.CreatedAt,
	}
}

func contactFromSupplier(sup model.Supplier) *model.Contact {
	return &model.Contact{
		Name:          sup.Name,
		Email:         sup.Email,
		Phone:         sup.Phone,
		Address:       sup.Address,
		ContactType:   model.ContactTypeSupplier,
		ContactNature: legacyNature("", sup.ContactPerson),
		Status:        defaultString(sup.Status, model.ContactStatusActive),
		ContactPerson: sup.ContactPerson,
		Speciality:    sup.Speciality,
		CreatedBy:     sup.CreatedBy,
		CreatedAt:     sup.CreatedAt,
	}
}

// mergeSupplier marks a client contact as also being a supplier and fills
// the fields only the supplier record carries.
func mergeSupplier(c *model.Contact, sup model.Supplier) {
	c.ContactType = model.ContactTypeBoth
	c.Speciality = sup.Speciality
	c.Email = defaultString(c.Email, sup.Email)
	c.Phone = defaultString(c.Phone, sup.Phone)
	c.Address = defaultString(c.Address, sup.Address)
	c.ContactPerson = defaultString(c.ContactPerson, sup.ContactPerson)
	c.ContactNature = legacyNature(c.Company, c.ContactPerson)
}
