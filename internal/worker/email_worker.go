package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mouhib912/Event-Management-Platform/internal/infra"

	"github.com/rs/zerolog/log"
)

// Document kinds an email job can carry.
const (
	DocumentPurchase = "purchase"
	DocumentInvoice  = "invoice"
)

// EmailJobPayload asks for one document to be rendered and mailed.
type EmailJobPayload struct {
	Document   string `json:"document"`
	DocumentID uint   `json:"document_id"`
	To         string `json:"to"`
}

// DocumentSource renders the PDFs attached to outgoing mail.
type DocumentSource interface {
	PurchasePDF(ctx context.Context, id uint) (*infra.RenderedPDF, error)
	InvoicePDF(ctx context.Context, id uint) (*infra.RenderedPDF, error)
}

// Sender delivers one message.
type Sender interface {
	Send(to, subject, body string, attachments ...infra.Attachment) error
}

// EmailWorker renders a document and mails it through the circuit breaker.
type EmailWorker struct {
	docs    DocumentSource
	sender  Sender
	breaker *infra.Breaker
}

func NewEmailWorker(docs DocumentSource, sender Sender, breaker *infra.Breaker) *EmailWorker {
	return &EmailWorker{docs: docs, sender: sender, breaker: breaker}
}

func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("%w: invalid payload: %v", ErrPermanent, err)
	}
	if payload.To == "" {
		log.Warn().Str("document", payload.Document).Uint("document_id", payload.DocumentID).
			Msg("email_worker: empty recipient, skipping")
		return nil
	}

	var (
		pdf     *infra.RenderedPDF
		err     error
		subject string
		body    string
	)
	switch payload.Document {
	case DocumentPurchase:
		pdf, err = w.docs.PurchasePDF(ctx, payload.DocumentID)
		if err == nil {
			subject = "Bon de commande " + pdf.Number
			body = "Bonjour,\n\nVeuillez trouver ci-joint notre bon de commande " + pdf.Number + ".\n\nCordialement."
		}
	case DocumentInvoice:
		pdf, err = w.docs.InvoicePDF(ctx, payload.DocumentID)
		if err == nil {
			subject = "Document " + pdf.Number
			body = "Bonjour,\n\nVeuillez trouver ci-joint le document " + pdf.Number + ".\n\nCordialement."
		}
	default:
		return fmt.Errorf("%w: unknown document %q", ErrPermanent, payload.Document)
	}
	if err != nil {
		return fmt.Errorf("render %s %d: %w", payload.Document, payload.DocumentID, err)
	}

	attachment := infra.Attachment{Filename: pdf.Filename, ContentType: "application/pdf", Data: pdf.Data}
	send := func() error { return w.sender.Send(payload.To, subject, body, attachment) }
	if w.breaker != nil {
		err = w.breaker.Do(send)
	} else {
		err = send()
	}
	if err != nil {
		return fmt.Errorf("send %s to %s: %w", pdf.Number, payload.To, err)
	}

	log.Info().Str("to", payload.To).Str("document", pdf.Number).Msg("email_worker: document sent")
	return nil
}
