package service

import (
	"context"
	"strings"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"
	"github.com/Mouhib912/Event-Management-Platform/internal/worker"
)

// EmailEnqueuer hands email jobs to the background workers.
type EmailEnqueuer interface {
	EnqueueEmail(ctx context.Context, payload worker.EmailJobPayload) error
}

// MailService queues documents for delivery. It returns the recipient.
type MailService interface {
	SendPurchase(ctx context.Context, id uint, to string) (string, error)
	SendInvoice(ctx context.Context, id uint, to string) (string, error)
}

type mailService struct {
	purchases repository.PurchaseRepository
	invoices  repository.InvoiceRepository
	queue     EmailEnqueuer
}

// NewMailService builds the service. A nil queue makes every send fail
// with Unavailable.
func NewMailService(purchases repository.PurchaseRepository, invoices repository.InvoiceRepository, queue EmailEnqueuer) MailService {
	return &mailService{purchases: purchases, invoices: invoices, queue: queue}
}

func (s *mailService) SendPurchase(ctx context.Context, id uint, to string) (string, error) {
	if s.queue == nil {
		return "", apierror.Unavailable("Email queue unavailable")
	}
	p, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		return "", notFound(err, "Purchase not found")
	}
	if len(p.Items) == 0 {
		return "", apierror.Invalid("Purchase has no items")
	}
	if p.Supplier == nil {
		return "", apierror.Invalid("Supplier not found")
	}

	recipient := strings.TrimSpace(defaultString(to, p.Supplier.Email))
	if recipient == "" {
		return "", apierror.Invalid("No recipient email")
	}
	job := worker.EmailJobPayload{Document: worker.DocumentPurchase, DocumentID: p.ID, To: recipient}
	if err := s.queue.EnqueueEmail(ctx, job); err != nil {
		return "", err
	}
	return recipient, nil
}

func (s *mailService) SendInvoice(ctx context.Context, id uint, to string) (string, error) {
	if s.queue == nil {
		return "", apierror.Unavailable("Email queue unavailable")
	}
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return "", notFound(err, "Invoice not found")
	}
	if len(inv.Items) == 0 && (inv.Stand == nil || len(inv.Stand.Items) == 0) {
		return "", apierror.Invalid("Invoice has no items")
	}

	recipient := strings.TrimSpace(defaultString(to, inv.ClientEmail))
	if recipient == "" {
		return "", apierror.Invalid("No recipient email")
	}
	job := worker.EmailJobPayload{Document: worker.DocumentInvoice, DocumentID: inv.ID, To: recipient}
	if err := s.queue.EnqueueEmail(ctx, job); err != nil {
		return "", err
	}
	return recipient, nil
}
