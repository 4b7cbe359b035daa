package infra

// pdf.go renders purchase orders and devis/factures as A4 documents with
// go-pdf/fpdf. Every amount is printed exactly as persisted, rounded to two
// places, followed by the document currency.

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const fallbackCurrency = "TND"

// Party is one of the two address columns.
type Party struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Extra   []string
}

// DocumentLine is one row of the item table.
type DocumentLine struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// TotalRow is a labelled amount under the item table.
type TotalRow struct {
	Label  string
	Amount decimal.Decimal
	// Text replaces the amount when set.
	Text string
}

// Document is everything the renderer needs. The service layer maps
// purchases and invoices onto it.
type Document struct {
	Title             string
	Number            string
	Date              time.Time
	StandName         string
	Due               string
	IssuerLabel       string
	Issuer            Party
	CounterpartyLabel string
	Counterparty      Party
	Lines             []DocumentLine
	Totals            []TotalRow
	Currency          string
	TermsLeftTitle    string
	TermsLeft         []string
	TermsRightTitle   string
	TermsRight        []string
}

// RenderedPDF is a finished document ready to download or attach.
type RenderedPDF struct {
	Number   string
	Filename string
	Data     []byte
}

// PDFRenderer turns Documents into PDF bytes.
type PDFRenderer struct {
	logoPath string
	compress bool
}

// NewPDFRenderer builds a renderer. logoPath may be empty or point to a
// missing file; the header then shows the issuer name only.
func NewPDFRenderer(logoPath string, compress bool) *PDFRenderer {
	return &PDFRenderer{logoPath: logoPath, compress: compress}
}

func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	currency := doc.Currency
	if currency == "" {
		currency = fallbackCurrency
	}
	money := func(d decimal.Decimal) string { return d.StringFixed(2) + " " + currency }

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	if r.logoPath != "" {
		if _, err := os.Stat(r.logoPath); err == nil {
			pdf.ImageOptions(r.logoPath, 15, 12, 30, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, tr(doc.Title), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr(doc.Issuer.Name), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	// ── Metadata box ─────────────────────────────────────────────────────────
	info := []string{"N°: " + doc.Number, "DATE: " + doc.Date.Format("02/01/2006")}
	if doc.StandName != "" {
		info = append(info, "STAND: "+doc.StandName)
	}
	if doc.Due != "" {
		info = append(info, doc.Due)
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 8, tr(strings.Join(info, "  |  ")), "1", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Issuer / counterparty ────────────────────────────────────────────────
	colW := contentW / 2
	pdf.SetFillColor(220, 220, 220)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colW, 6, tr(doc.IssuerLabel), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW, 6, tr(doc.CounterpartyLabel), "1", 1, "L", true, 0, "")

	left, right := partyLines(doc.Issuer), partyLines(doc.Counterparty)
	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	pdf.SetFont("Helvetica", "", 8)
	for i := 0; i < rows; i++ {
		border := "LR"
		if i == rows-1 {
			border = "LRB"
		}
		pdf.CellFormat(colW, 5, tr(lineAt(left, i)), border, 0, "L", false, 0, "")
		pdf.CellFormat(colW, 5, tr(lineAt(right, i)), border, 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Items ────────────────────────────────────────────────────────────────
	widths := []float64{contentW * 0.40, contentW * 0.15, contentW * 0.22, contentW * 0.23}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range []string{"DESCRIPTION", "QUANTITÉ", "PRIX UNITAIRE", "TOTAL HT"} {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, l := range doc.Lines {
		pdf.CellFormat(widths[0], 6, tr(truncate(l.Description, 48)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d", l.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, money(l.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, money(l.Total), "1", 1, "R", false, 0, "")
	}

	// ── Totals ───────────────────────────────────────────────────────────────
	labelW := widths[0] + widths[1] + widths[2]
	pdf.SetFont("Helvetica", "B", 9)
	for _, t := range doc.Totals {
		value := t.Text
		if value == "" {
			value = money(t.Amount)
		}
		pdf.CellFormat(labelW, 6, tr(t.Label), "", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// ── Payment terms ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colW, 6, tr(doc.TermsLeftTitle), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW, 6, tr(doc.TermsRightTitle), "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	rows = len(doc.TermsLeft)
	if len(doc.TermsRight) > rows {
		rows = len(doc.TermsRight)
	}
	for i := 0; i < rows; i++ {
		border := "LR"
		if i == rows-1 {
			border = "LRB"
		}
		pdf.CellFormat(colW, 4, tr(lineAt(doc.TermsLeft, i)), border, 0, "L", false, 0, "")
		pdf.CellFormat(colW, 4, tr(lineAt(doc.TermsRight, i)), border, 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render %s: %w", doc.Number, err)
	}
	return buf.Bytes(), nil
}

func partyLines(p Party) []string {
	lines := []string{orNA(p.Name), orNA(p.Email), "Tél: " + orNA(p.Phone), orNA(p.Address)}
	return append(lines, p.Extra...)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
