package service

import (
	"context"
	"fmt"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/billing"
	"github.com/Mouhib912/Event-Management-Platform/internal/config"
	"github.com/Mouhib912/Event-Management-Platform/internal/infra"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"

	"github.com/shopspring/decimal"
)

// PDFRenderer lays a Document out as PDF bytes.
type PDFRenderer interface {
	Render(doc infra.Document) ([]byte, error)
}

// DocumentService produces the printable purchase orders and invoices.
type DocumentService interface {
	PurchasePDF(ctx context.Context, id uint) (*infra.RenderedPDF, error)
	InvoicePDF(ctx context.Context, id uint) (*infra.RenderedPDF, error)
}

type documentService struct {
	purchases repository.PurchaseRepository
	invoices  repository.InvoiceRepository
	renderer  PDFRenderer
	cfg       *config.Config
}

func NewDocumentService(
	purchases repository.PurchaseRepository,
	invoices repository.InvoiceRepository,
	renderer PDFRenderer,
	cfg *config.Config,
) DocumentService {
	return &documentService{purchases: purchases, invoices: invoices, renderer: renderer, cfg: cfg}
}

var bankTransfer = []string{
	"Par virement bancaire:",
	"Banque: Banque de Tunisie",
	"IBAN: TN59 XXXX XXXX XXXX XXXX XXXX",
	"BIC: BTUNTNTT",
}

func (s *documentService) issuer() infra.Party {
	return infra.Party{
		Name:    defaultString(s.cfg.CompanyName, model.DefaultCompanyName),
		Email:   s.cfg.CompanyEmail,
		Phone:   s.cfg.CompanyPhone,
		Address: s.cfg.CompanyAddress,
	}
}

func (s *documentService) PurchasePDF(ctx context.Context, id uint) (*infra.RenderedPDF, error) {
	p, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Purchase not found")
	}
	if len(p.Items) == 0 {
		return nil, apierror.Invalid("Purchase has no items")
	}
	if p.Supplier == nil {
		return nil, apierror.Invalid("Supplier not found")
	}

	lines := make([]infra.DocumentLine, 0, len(p.Items))
	for _, it := range p.Items {
		name, perDay := "Produit inconnu", false
		if it.Product != nil {
			name, perDay = it.Product.Name, it.Product.IsPerDay()
		}
		lines = append(lines, infra.DocumentLine{
			Description: describeLine(name, perDay, it.Days),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.TotalPrice,
		})
	}

	// Purchases only persist their HT total; tax is shown at the default rate.
	tva := p.TotalAmount.Mul(billing.DefaultTaxRate).Div(decimal.NewFromInt(100))
	doc := infra.Document{
		Title:             "BON DE COMMANDE",
		Number:            p.PurchaseNumber,
		Date:              p.CreatedAt,
		Due:               "ÉCHÉANCE: À RÉCEPTION",
		IssuerLabel:       "ÉMETTEUR:",
		Issuer:            s.issuer(),
		CounterpartyLabel: "DESTINATAIRE:",
		Counterparty: infra.Party{
			Name:    p.Supplier.Name,
			Email:   p.Supplier.Email,
			Phone:   p.Supplier.Phone,
			Address: p.Supplier.Address,
		},
		Lines: lines,
		Totals: []infra.TotalRow{
			{Label: "TOTAL HT:", Amount: p.TotalAmount},
			{Label: fmt.Sprintf("TVA (%s%%):", billing.DefaultTaxRate.String()), Amount: tva},
			{Label: "REMISE:", Text: "-"},
			{Label: "TOTAL TTC:", Amount: p.TotalAmount.Add(tva)},
		},
		Currency:        p.Currency,
		TermsLeftTitle:  "RÈGLEMENT:",
		TermsLeft:       bankTransfer,
		TermsRightTitle: "TERMES & CONDITIONS",
		TermsRight: []string{
			"En cas de retard de paiement, une indemnité calculée à trois",
			"fois le taux de l'intérêt légal ainsi qu'une indemnité forfaitaire",
			"pour frais de recouvrement de 40 dinars sont exigibles.",
		},
	}
	if p.Stand != nil {
		doc.StandName = p.Stand.Name
	}
	return s.render(doc)
}

func (s *documentService) InvoicePDF(ctx context.Context, id uint) (*infra.RenderedPDF, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Invoice not found")
	}

	var lines []infra.DocumentLine
	switch {
	case len(inv.Items) > 0:
		for _, it := range inv.Items {
			lines = append(lines, infra.DocumentLine{
				Description: describeLine(it.ProductName, it.PricingType == model.PricingPerDay, it.Days),
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Total:       it.TotalPrice,
			})
		}
	case inv.Stand != nil:
		for _, it := range inv.Stand.Items {
			name, perDay := "Produit inconnu", false
			if it.Product != nil {
				name, perDay = it.Product.Name, it.Product.IsPerDay()
			}
			lines = append(lines, infra.DocumentLine{
				Description: describeLine(name, perDay, it.Days),
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Total:       it.TotalPrice,
			})
		}
	}
	if len(lines) == 0 {
		return nil, apierror.Invalid("Invoice has no items")
	}

	title := "DEVIS"
	if inv.Status != model.InvoiceDevis {
		title = "FACTURE"
	}
	totals := []infra.TotalRow{
		{Label: "TOTAL HT:", Amount: inv.TotalHT},
		{Label: fmt.Sprintf("TVA (%s%%):", inv.TVAPercentage.String()), Amount: inv.TVAAmount},
		{Label: "Timbre Fiscal:", Amount: inv.TimbreFiscale},
		{Label: "TOTAL TTC:", Amount: inv.TotalTTC},
	}
	if inv.AdvancePayment.IsPositive() {
		totals = append(totals, infra.TotalRow{Label: "Avance:", Amount: inv.AdvancePayment})
	}

	doc := infra.Document{
		Title:       title,
		Number:      inv.InvoiceNumber,
		Date:        inv.CreatedAt,
		IssuerLabel: "ÉMETTEUR:",
		Issuer: infra.Party{
			Name:    defaultString(inv.CompanyName, model.DefaultCompanyName),
			Email:   inv.CompanyEmail,
			Phone:   inv.CompanyPhone,
			Address: inv.CompanyAddress,
		},
		CounterpartyLabel: "CLIENT:",
		Counterparty:      invoiceCounterparty(inv),
		Lines:             lines,
		Totals:            totals,
		Currency:          inv.Currency,
		TermsLeftTitle:    "MODALITÉS DE PAIEMENT:",
		TermsLeft:         append(append([]string{}, bankTransfer...), "Paiement à réception de facture"),
		TermsRightTitle:   "CONDITIONS:",
		TermsRight: []string{
			"Facture payable sous 30 jours.",
			"En cas de retard, des pénalités de 3x le taux légal",
			"seront appliquées conformément au code de commerce.",
		},
	}
	if inv.AgentName != "" {
		doc.Issuer.Extra = []string{"Agent: " + inv.AgentName}
	}
	if inv.Stand != nil {
		doc.StandName = inv.Stand.Name
	}
	return s.render(doc)
}

// invoiceCounterparty prints persons working for an enterprise as
// "<enterprise> (<matricule>)" on the order of the person.
func invoiceCounterparty(inv *model.Invoice) infra.Party {
	p := infra.Party{
		Name:    inv.ClientName,
		Email:   inv.ClientEmail,
		Phone:   inv.ClientPhone,
		Address: inv.ClientAddress,
	}
	c := inv.Contact
	if c != nil && !c.IsEnterprise() && c.Enterprise != nil {
		ent := c.Enterprise.Name
		if c.Enterprise.MatriculeFiscal != "" {
			ent += " (" + c.Enterprise.MatriculeFiscal + ")"
		}
		order := "à l'ordre de: " + c.Name
		if c.Position != "" {
			order += " - " + c.Position
		}
		p.Name = ent
		p.Extra = append(p.Extra, order)
		return p
	}
	if inv.ClientCompany != "" && inv.ClientCompany != inv.ClientName {
		p.Extra = append(p.Extra, inv.ClientCompany)
	}
	return p
}

func describeLine(name string, perDay bool, days int) string {
	if perDay && days > 1 {
		return fmt.Sprintf("%s (%d jours)", name, days)
	}
	return name
}

func (s *documentService) render(doc infra.Document) (*infra.RenderedPDF, error) {
	data, err := s.renderer.Render(doc)
	if err != nil {
		return nil, err
	}
	return &infra.RenderedPDF{
		Number:   doc.Number,
		Filename: fmt.Sprintf("facture_%s.pdf", doc.Number),
		Data:     data,
	}, nil
}
