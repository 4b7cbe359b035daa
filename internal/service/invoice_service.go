package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/billing"
	"github.com/Mouhib912/Event-Management-Platform/internal/config"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceService issues devis, turns them into factures and keeps their
// totals consistent with their lines.
type InvoiceService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error)
	List(ctx context.Context) ([]dto.InvoiceResponse, error)
	Get(ctx context.Context, id uint) (*dto.InvoiceResponse, error)
	ListItems(ctx context.Context, id uint) ([]dto.InvoiceItemResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateInvoiceRequest) (*dto.UpdateInvoiceResponse, error)
}

type invoiceService struct {
	invoices repository.InvoiceRepository
	stands   repository.StandRepository
	contacts repository.ContactRepository
	products repository.ProductRepository
	seq      repository.SequenceRepository
	cfg      *config.Config
}

func NewInvoiceService(
	invoices repository.InvoiceRepository,
	stands repository.StandRepository,
	contacts repository.ContactRepository,
	products repository.ProductRepository,
	seq repository.SequenceRepository,
	cfg *config.Config,
) InvoiceService {
	return &invoiceService{
		invoices: invoices,
		stands:   stands,
		contacts: contacts,
		products: products,
		seq:      seq,
		cfg:      cfg,
	}
}

func (s *invoiceService) Create(ctx context.Context, actor Actor, req dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	useStand := req.UseStand == nil || *req.UseStand

	inv := &model.Invoice{
		ClientName:     strings.TrimSpace(req.ClientName),
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		ClientAddress:  req.ClientAddress,
		ClientCompany:  req.ClientCompany,
		Remise:         decimalOr(req.Remise, decimal.Zero),
		RemiseType:     billing.NormalizeDiscountType(req.RemiseType),
		TVAPercentage:  decimalOr(req.TVAPercentage, billing.DefaultTaxRate),
		ProductFactor:  decimalOr(req.ProductFactor, billing.DefaultFactor),
		TimbreFiscale:  decimalOr(req.TimbreFiscale, decimal.Zero),
		AdvancePayment: decimal.Zero,
		Status:         model.InvoiceDevis,
		AgentName:      actor.Name,
		CompanyName:    defaultString(req.CompanyName, defaultString(s.cfg.CompanyName, model.DefaultCompanyName)),
		CompanyAddress: defaultString(req.CompanyAddress, s.cfg.CompanyAddress),
		CompanyPhone:   defaultString(req.CompanyPhone, s.cfg.CompanyPhone),
		CompanyEmail:   defaultString(req.CompanyEmail, s.cfg.CompanyEmail),
		CreatedBy:      uintPtr(actor.UserID),
	}
	if !inv.ProductFactor.IsPositive() {
		return nil, apierror.Invalid("product_factor must be positive")
	}

	var stand *model.Stand
	if useStand {
		if req.StandID == nil {
			return nil, apierror.Invalid("stand_id is required")
		}
		st, err := s.stands.FindByID(ctx, *req.StandID)
		if err != nil {
			return nil, notFound(err, "Stand not found")
		}
		if st.Status != model.StandApproved {
			return nil, apierror.Invalid("Stand must be approved before creating invoice")
		}
		stand = st
		inv.StandID = uintPtr(st.ID)
		inv.ClientID = st.ClientID
		if st.Client != nil {
			snapshotLegacyClient(inv, st.Client)
		}
	} else if req.ClientID != nil {
		c, err := s.contacts.FindByID(ctx, *req.ClientID)
		switch {
		case err == nil:
			inv.ContactID = uintPtr(c.ID)
			snapshotContact(inv, c)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}
	inv.ClientName = defaultString(inv.ClientName, model.DefaultClientName)

	items, err := s.buildItems(ctx, req.ModifiedItems)
	if err != nil {
		return nil, err
	}
	var subtotal decimal.Decimal
	switch {
	case len(items) > 0:
		subtotal = itemsSubtotal(items)
	case stand != nil:
		subtotal = stand.TotalAmount.Mul(inv.ProductFactor)
	default:
		return nil, apierror.Invalid("No products provided for invoice")
	}
	applyTotals(inv, subtotal)

	inv.Currency = req.Currency
	if stand != nil {
		inv.Currency = defaultString(inv.Currency, stand.Currency)
	}
	inv.Currency = defaultString(inv.Currency, s.cfg.DefaultCurrency)
	inv.Items = items

	err = runTx(ctx, s.invoices.DB(), func(tx *gorm.DB) error {
		number, err := nextInvoiceNumber(ctx, s.seq, tx, timeNow())
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number
		return s.invoices.Create(ctx, tx, inv)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateInvoiceResponse{
		Message:       "Devis created successfully",
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
	}, nil
}

// snapshotLegacyClient fills the client fields the request left empty.
func snapshotLegacyClient(inv *model.Invoice, c *model.Client) {
	inv.ClientName = defaultString(inv.ClientName, c.Name)
	inv.ClientEmail = defaultString(inv.ClientEmail, c.Email)
	inv.ClientPhone = defaultString(inv.ClientPhone, c.Phone)
	inv.ClientAddress = defaultString(inv.ClientAddress, c.Address)
	inv.ClientCompany = defaultString(inv.ClientCompany, c.Company)
}

// snapshotContact copies a contact onto the invoice. Persons linked to an
// enterprise carry the enterprise name as company.
func snapshotContact(inv *model.Invoice, c *model.Contact) {
	inv.ClientName = c.Name
	inv.ClientEmail = c.Email
	inv.ClientPhone = c.Phone
	inv.ClientAddress = c.Address
	switch {
	case c.IsEnterprise():
		inv.ClientCompany = c.Name
	case c.Enterprise != nil:
		inv.ClientCompany = c.Enterprise.Name
	default:
		inv.ClientCompany = defaultString(c.Company, inv.ClientCompany)
	}
}

// buildItems prices invoice lines. Product name and pricing model default
// to the catalog values when the line does not carry its own.
func (s *invoiceService) buildItems(ctx context.Context, in []dto.InvoiceItemInput) ([]model.InvoiceItem, error) {
	if len(in) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(in))
	for _, it := range in {
		ids = append(ids, it.ProductID)
	}
	byID, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]model.InvoiceItem, 0, len(in))
	for i, it := range in {
		days := it.Days
		if days == 0 {
			days = 1
		}
		factor := decimalOr(it.Factor, billing.DefaultFactor)
		if err := checkLine(i, lineInput{ProductID: it.ProductID, Quantity: it.Quantity, Days: days, UnitPrice: it.UnitPrice, Factor: factor}); err != nil {
			return nil, err
		}

		name := strings.TrimSpace(it.ProductName)
		pricing, _ := model.ParsePricingType(it.PricingType)
		price := it.UnitPrice
		if p, ok := byID[it.ProductID]; ok {
			name = defaultString(name, p.Name)
			pricing = defaultString(pricing, p.PricingType)
			if price.IsZero() {
				price = p.Price
			}
		} else if name == "" {
			return nil, productNotFound(it.ProductID)
		}
		pricing = defaultString(pricing, model.PricingFlat)

		items = append(items, model.InvoiceItem{
			ProductID:   it.ProductID,
			ProductName: name,
			PricingType: pricing,
			Quantity:    it.Quantity,
			Days:        days,
			UnitPrice:   price,
			Factor:      factor,
			TotalPrice:  billing.LineTotal(price, it.Quantity, days, pricing == model.PricingPerDay, factor),
		})
	}
	return items, nil
}

func itemsSubtotal(items []model.InvoiceItem) decimal.Decimal {
	totals := make([]decimal.Decimal, 0, len(items))
	for _, it := range items {
		totals = append(totals, it.TotalPrice)
	}
	return billing.Sum(totals)
}

// applyTotals recomputes HT, TVA and TTC from subtotal and the invoice's
// own discount, tax rate and fiscal stamp.
func applyTotals(inv *model.Invoice, subtotal decimal.Decimal) {
	t := billing.Compute(billing.Input{
		Subtotal:     subtotal,
		Discount:     inv.Remise,
		DiscountType: inv.RemiseType,
		TaxRate:      inv.TVAPercentage,
		FiscalStamp:  inv.TimbreFiscale,
	})
	inv.TotalHT = t.TotalHT
	inv.TVAAmount = t.TVAAmount
	inv.TotalTTC = t.TotalTTC
}

// applyInvoiceStatus writes status. Only the first devis → facture move
// renumbers the document, stamps its approval time and records the
// advance payment.
func applyInvoiceStatus(inv *model.Invoice, status string, advance *decimal.Decimal, now time.Time) {
	if inv.Status == model.InvoiceDevis && status == model.InvoiceFacture {
		inv.InvoiceNumber = model.FactureNumber(inv.InvoiceNumber)
		inv.ApprovedAt = &now
		if advance != nil {
			inv.AdvancePayment = *advance
		}
	}
	inv.Status = status
}

func (s *invoiceService) Update(ctx context.Context, id uint, req dto.UpdateInvoiceRequest) (*dto.UpdateInvoiceResponse, error) {
	switch {
	case req.ModifiedItems != nil:
		return s.updateItems(ctx, id, req)
	case req.Status != nil:
		return s.updateStatus(ctx, id, *req.Status, req.AdvancePayment)
	}
	return nil, apierror.Invalid("Nothing to update")
}

func (s *invoiceService) updateItems(ctx context.Context, id uint, req dto.UpdateInvoiceRequest) (*dto.UpdateInvoiceResponse, error) {
	items, err := s.buildItems(ctx, *req.ModifiedItems)
	if err != nil {
		return nil, err
	}

	var inv *model.Invoice
	err = runTx(ctx, s.invoices.DB(), func(tx *gorm.DB) error {
		var err error
		inv, err = s.invoices.FindForUpdate(ctx, tx, id)
		if err != nil {
			return notFound(err, "Invoice not found")
		}

		setString(&inv.ClientName, req.ClientName)
		setString(&inv.ClientEmail, req.ClientEmail)
		setString(&inv.ClientPhone, req.ClientPhone)
		setString(&inv.ClientAddress, req.ClientAddress)
		setString(&inv.ClientCompany, req.ClientCompany)
		setString(&inv.CompanyName, req.CompanyName)
		setString(&inv.CompanyAddress, req.CompanyAddress)
		setString(&inv.CompanyPhone, req.CompanyPhone)
		setString(&inv.CompanyEmail, req.CompanyEmail)
		setString(&inv.Currency, req.Currency)
		inv.Remise = decimalOr(req.Remise, inv.Remise)
		inv.TVAPercentage = decimalOr(req.TVAPercentage, inv.TVAPercentage)
		inv.ProductFactor = decimalOr(req.ProductFactor, inv.ProductFactor)
		inv.TimbreFiscale = decimalOr(req.TimbreFiscale, inv.TimbreFiscale)
		if req.RemiseType != nil {
			inv.RemiseType = billing.NormalizeDiscountType(*req.RemiseType)
		}
		if !inv.ProductFactor.IsPositive() {
			return apierror.Invalid("product_factor must be positive")
		}

		// The new list alone drives the totals, even when it is empty.
		applyTotals(inv, itemsSubtotal(items))

		if err := s.invoices.ReplaceItems(ctx, tx, id, items); err != nil {
			return err
		}
		return s.invoices.Update(ctx, tx, inv)
	})
	if err != nil {
		return nil, err
	}
	return &dto.UpdateInvoiceResponse{
		Message: "Invoice updated successfully",
		Invoice: &dto.InvoiceTotals{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			TotalHT:       inv.TotalHT,
			TVAAmount:     inv.TVAAmount,
			TotalTTC:      inv.TotalTTC,
		},
	}, nil
}

func (s *invoiceService) updateStatus(ctx context.Context, id uint, status string, advance *decimal.Decimal) (*dto.UpdateInvoiceResponse, error) {
	if !model.IsInvoiceStatus(status) {
		return nil, apierror.Invalid("Invalid status")
	}

	var number string
	err := runTx(ctx, s.invoices.DB(), func(tx *gorm.DB) error {
		inv, err := s.invoices.FindForUpdate(ctx, tx, id)
		if err != nil {
			return notFound(err, "Invoice not found")
		}
		applyInvoiceStatus(inv, status, advance, timeNow())
		number = inv.InvoiceNumber
		return s.invoices.Update(ctx, tx, inv)
	})
	if err != nil {
		return nil, err
	}
	return &dto.UpdateInvoiceResponse{Message: "Invoice updated successfully", InvoiceNumber: number}, nil
}

func (s *invoiceService) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := s.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for i := range list {
		out = append(out, toInvoiceResponse(&list[i]))
	}
	return out, nil
}

func (s *invoiceService) Get(ctx context.Context, id uint) (*dto.InvoiceResponse, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Invoice not found")
	}
	resp := toInvoiceResponse(inv)
	return &resp, nil
}

func (s *invoiceService) ListItems(ctx context.Context, id uint) ([]dto.InvoiceItemResponse, error) {
	if _, err := s.invoices.FindByID(ctx, id); err != nil {
		return nil, notFound(err, "Invoice not found")
	}
	items, err := s.invoices.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			PricingType: it.PricingType,
			Quantity:    it.Quantity,
			Days:        it.Days,
			UnitPrice:   it.UnitPrice,
			Factor:      it.Factor,
			TotalPrice:  it.TotalPrice,
		})
	}
	return out, nil
}

func toInvoiceResponse(inv *model.Invoice) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		StandID:        inv.StandID,
		ClientID:       inv.ClientID,
		ContactID:      inv.ContactID,
		ClientName:     inv.ClientName,
		ClientEmail:    inv.ClientEmail,
		ClientPhone:    inv.ClientPhone,
		ClientAddress:  inv.ClientAddress,
		ClientCompany:  inv.ClientCompany,
		TotalHT:        inv.TotalHT,
		TVAAmount:      inv.TVAAmount,
		TotalTTC:       inv.TotalTTC,
		AdvancePayment: inv.AdvancePayment,
		Remise:         inv.Remise,
		RemiseType:     inv.RemiseType,
		TVAPercentage:  inv.TVAPercentage,
		ProductFactor:  inv.ProductFactor,
		Currency:       inv.Currency,
		TimbreFiscale:  inv.TimbreFiscale,
		Status:         inv.Status,
		AgentName:      inv.AgentName,
		CompanyName:    inv.CompanyName,
		CompanyAddress: inv.CompanyAddress,
		CompanyPhone:   inv.CompanyPhone,
		CompanyEmail:   inv.CompanyEmail,
		CreatedAt:      inv.CreatedAt,
		ApprovedAt:     inv.ApprovedAt,
		CreatedBy:      inv.CreatedBy,
	}
	if inv.Stand != nil {
		name := inv.Stand.Name
		resp.StandName = &name
	}
	return resp
}
