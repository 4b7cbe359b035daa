package infra

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	return Document{
		Title:             "FACTURE",
		Number:            "FAC-2025-0001",
		Date:              time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		StandName:         "Salon Auto",
		IssuerLabel:       "ÉMETTEUR:",
		Issuer:            Party{Name: "Events Co", Email: "contact@events.test"},
		CounterpartyLabel: "CLIENT:",
		Counterparty:      Party{Name: "Acme", Extra: []string{"Acme SARL"}},
		Lines: []DocumentLine{
			{Description: "Stand complet", Quantity: 1, UnitPrice: decimal.NewFromInt(1000), Total: decimal.NewFromInt(1000)},
		},
		Totals: []TotalRow{
			{Label: "TOTAL HT:", Amount: decimal.NewFromInt(900)},
			{Label: "REMISE:", Text: "-"},
			{Label: "TOTAL TTC:", Amount: decimal.NewFromInt(1072)},
		},
		TermsLeftTitle:  "RÈGLEMENT:",
		TermsLeft:       []string{"Par virement bancaire:"},
		TermsRightTitle: "CONDITIONS:",
	}
}

func TestPDFRenderer_PrintsFixedTwoDecimals(t *testing.T) {
	data, err := NewPDFRenderer("", false).Render(sampleDocument())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, string(data), "1072.00 TND")
	assert.Contains(t, string(data), "900.00 TND")
	assert.Contains(t, string(data), "FAC-2025-0001")
}

func TestPDFRenderer_UsesDocumentCurrency(t *testing.T) {
	doc := sampleDocument()
	doc.Currency = "EUR"
	data, err := NewPDFRenderer("/nonexistent/logo.png", false).Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1072.00 EUR")
	assert.NotContains(t, string(data), "TND")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
