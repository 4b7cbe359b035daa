package service

import (
	"context"
	"testing"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/infra"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureRenderer struct{ doc infra.Document }

func (c *captureRenderer) Render(doc infra.Document) ([]byte, error) {
	c.doc = doc
	return []byte("%PDF-fake"), nil
}

func TestDocument_InvoicePDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	st := approvedStand(t, f, f.client(t, "delta"), "1000")
	created, err := newInvoiceSvc(f).Create(ctx, f.owner, dto.CreateInvoiceRequest{
		StandID: &st.ID, Remise: decPtr("10"), TimbreFiscale: decPtr("1"),
	})
	require.NoError(t, err)

	r := &captureRenderer{}
	out, err := NewDocumentService(f.purchases, f.invoices, r, f.cfg).InvoicePDF(ctx, created.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, "facture_"+created.InvoiceNumber+".pdf", out.Filename)
	assert.Equal(t, []byte("%PDF-fake"), out.Data)

	assert.Equal(t, "DEVIS", r.doc.Title)
	require.Len(t, r.doc.Lines, 1, "stand lines are used when the invoice has none")
	require.Len(t, r.doc.Totals, 4)
	assert.Equal(t, "TVA (19%):", r.doc.Totals[1].Label)
	assert.True(t, dec("1072").Equal(r.doc.Totals[3].Amount))
	assert.Equal(t, "delta", r.doc.Counterparty.Name)
	assert.Equal(t, []string{"Agent: Owner"}, r.doc.Issuer.Extra)
}

func TestDocument_PurchasePDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sup := f.supplier(t, "Lumière", "lum@test")
	spot := f.product(t, "Spot", sup.ID, "50", model.PricingPerDay)
	resp, err := newPurchaseSvc(f).Create(ctx, f.owner, dto.CreatePurchaseRequest{
		SupplierID: sup.ID, Items: []dto.LineItemInput{{ProductID: spot.ID, Quantity: 2, Days: 2}},
	})
	require.NoError(t, err)

	r := &captureRenderer{}
	svc := NewDocumentService(f.purchases, f.invoices, r, f.cfg)
	out, err := svc.PurchasePDF(ctx, resp.PurchaseID)
	require.NoError(t, err)
	assert.Equal(t, "facture_"+resp.PurchaseNumber+".pdf", out.Filename)
	assert.Equal(t, "BON DE COMMANDE", r.doc.Title)
	assert.Equal(t, "Spot (2 jours)", r.doc.Lines[0].Description)
	assert.Equal(t, "Lumière", r.doc.Counterparty.Name)
	assert.True(t, dec("238").Equal(r.doc.Totals[3].Amount), "200 plus TVA")

	empty, err := newPurchaseSvc(f).Create(ctx, f.owner, dto.CreatePurchaseRequest{SupplierID: sup.ID})
	require.NoError(t, err)
	_, err = svc.PurchasePDF(ctx, empty.PurchaseID)
	assert.Equal(t, "Purchase has no items", apierror.PublicMessage(err))

	_, err = svc.PurchasePDF(ctx, 999)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

type fakeQueue struct{ jobs []worker.EmailJobPayload }

func (q *fakeQueue) EnqueueEmail(_ context.Context, p worker.EmailJobPayload) error {
	q.jobs = append(q.jobs, p)
	return nil
}

func TestMail_SendPurchaseResolvesRecipient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sup := f.supplier(t, "Tentes", "tentes@test")
	tent := f.product(t, "Tente", sup.ID, "300", model.PricingFlat)
	resp, err := newPurchaseSvc(f).Create(ctx, f.owner, dto.CreatePurchaseRequest{
		SupplierID: sup.ID, Items: []dto.LineItemInput{{ProductID: tent.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	q := &fakeQueue{}
	svc := NewMailService(f.purchases, f.invoices, q)

	to, err := svc.SendPurchase(ctx, resp.PurchaseID, "")
	require.NoError(t, err)
	assert.Equal(t, "tentes@test", to)

	to, err = svc.SendPurchase(ctx, resp.PurchaseID, "override@test")
	require.NoError(t, err)
	assert.Equal(t, "override@test", to)

	require.Len(t, q.jobs, 2)
	assert.Equal(t, worker.EmailJobPayload{Document: worker.DocumentPurchase, DocumentID: resp.PurchaseID, To: "tentes@test"}, q.jobs[0])
}

func TestMail_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := NewMailService(f.purchases, f.invoices, nil).SendInvoice(ctx, 1, "")
	assert.Equal(t, apierror.KindUnavailable, apierror.KindOf(err))
	assert.Equal(t, "Email queue unavailable", apierror.PublicMessage(err))

	sup := f.supplier(t, "Silent", "")
	p := f.product(t, "Câble", sup.ID, "2", model.PricingFlat)
	resp, err := newPurchaseSvc(f).Create(ctx, f.owner, dto.CreatePurchaseRequest{
		SupplierID: sup.ID, Items: []dto.LineItemInput{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = NewMailService(f.purchases, f.invoices, &fakeQueue{}).SendPurchase(ctx, resp.PurchaseID, "")
	assert.Equal(t, "No recipient email", apierror.PublicMessage(err))
}
