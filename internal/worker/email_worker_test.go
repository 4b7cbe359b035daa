package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDocs struct{ err error }

func (s stubDocs) PurchasePDF(_ context.Context, id uint) (*infra.RenderedPDF, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &infra.RenderedPDF{Number: "BC-2025-001", Filename: "facture_BC-2025-001.pdf", Data: []byte("%PDF")}, nil
}

func (s stubDocs) InvoicePDF(_ context.Context, id uint) (*infra.RenderedPDF, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &infra.RenderedPDF{Number: "DEV-2025-0001", Filename: "facture_DEV-2025-0001.pdf", Data: []byte("%PDF")}, nil
}

type sentMail struct {
	to, subject string
	attachments []infra.Attachment
}

type stubSender struct {
	sent []sentMail
	err  error
}

func (s *stubSender) Send(to, subject, _ string, attachments ...infra.Attachment) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to: to, subject: subject, attachments: attachments})
	return nil
}

func payload(t *testing.T, p EmailJobPayload) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return b
}

func TestEmailWorker_SendsPurchaseOrder(t *testing.T) {
	sender := &stubSender{}
	w := NewEmailWorker(stubDocs{}, sender, nil)

	err := w.Process(context.Background(), payload(t, EmailJobPayload{Document: DocumentPurchase, DocumentID: 1, To: "sup@test"}))
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "sup@test", sender.sent[0].to)
	assert.Equal(t, "Bon de commande BC-2025-001", sender.sent[0].subject)
	require.Len(t, sender.sent[0].attachments, 1)
	assert.Equal(t, "facture_BC-2025-001.pdf", sender.sent[0].attachments[0].Filename)
	assert.Equal(t, "application/pdf", sender.sent[0].attachments[0].ContentType)
}

func TestEmailWorker_SkipsEmptyRecipient(t *testing.T) {
	sender := &stubSender{}
	w := NewEmailWorker(stubDocs{}, sender, nil)
	require.NoError(t, w.Process(context.Background(), payload(t, EmailJobPayload{Document: DocumentInvoice, DocumentID: 1})))
	assert.Empty(t, sender.sent)
}

func TestEmailWorker_PermanentFailures(t *testing.T) {
	w := NewEmailWorker(stubDocs{}, &stubSender{}, nil)
	err := w.Process(context.Background(), json.RawMessage(`{"document":`))
	assert.ErrorIs(t, err, ErrPermanent)

	err = w.Process(context.Background(), payload(t, EmailJobPayload{Document: "receipt", To: "a@b.c"}))
	assert.ErrorIs(t, err, ErrPermanent)
}

func TestEmailWorker_SendFailureIsRetryableAndTripsBreaker(t *testing.T) {
	smtpErr := errors.New("connection refused")
	sender := &stubSender{err: smtpErr}
	breaker := infra.NewBreaker(infra.BreakerConfig{FailureThreshold: 1, OpenTimeout: time.Minute})
	w := NewEmailWorker(stubDocs{}, sender, breaker)
	job := payload(t, EmailJobPayload{Document: DocumentInvoice, DocumentID: 1, To: "c@test"})

	err := w.Process(context.Background(), job)
	assert.ErrorIs(t, err, smtpErr)
	assert.NotErrorIs(t, err, ErrPermanent)

	err = w.Process(context.Background(), job)
	assert.ErrorIs(t, err, infra.ErrBreakerOpen)
}
