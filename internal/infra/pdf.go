package infra

// pdf.go — financial report rendering with go-pdf/fpdf.
// A4 portrait: income statement table per period, balance sheet, cash flow.
// The output file is saved to storagePath/report_{range}_{timestamp}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dukapos/internal/currency"
	"dukapos/internal/report"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateReportPDF writes the financial report as a PDF and returns the
// absolute path of the generated file.
func GenerateReportPDF(rng string, records []report.PeriodRecord, bs report.BalanceSheet, cf report.CashFlow, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("report_%s_%s.pdf", rng, time.Now().UTC().Format("20060102T150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 28

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 9, "DukaPOS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Financial Report (%s)", rng), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, time.Now().UTC().Format("02 Jan 2006 15:04 UTC"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Income statement ─────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Income Statement", "", 1, "L", false, 0, "")

	cols := []struct {
		title string
		width float64
	}{
		{"Period", 0.16},
		{"Revenue", 0.17},
		{"Cost of Sales", 0.17},
		{"Gross Profit", 0.17},
		{"Op. Expenses", 0.16},
		{"Net Profit", 0.17},
	}
	pdf.SetFont("Helvetica", "B", 8)
	for i, col := range cols {
		border := "B"
		last := 0
		if i == len(cols)-1 {
			last = 1
		}
		pdf.CellFormat(contentW*col.width, 6, col.title, border, last, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 8)
	for _, rec := range records {
		pdf.CellFormat(contentW*cols[0].width, 6, rec.Period, "", 0, "L", false, 0, "")
		for i, v := range []decimal.Decimal{rec.Revenue, rec.CostOfSales, rec.GrossProfit, rec.OperatingExpenses, rec.NetProfit} {
			last := 0
			if i == 4 {
				last = 1
			}
			pdf.CellFormat(contentW*cols[i+1].width, 6, currency.Format(v), "", last, "R", false, 0, "")
		}
	}
	pdf.Ln(4)

	// ── Balance sheet ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Balance Sheet", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	labelW, valueW := contentW*0.6, contentW*0.4
	row := func(label string, v decimal.Decimal, bold bool) {
		if bold {
			pdf.SetFont("Helvetica", "B", 8)
		}
		pdf.CellFormat(labelW, 5, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 5, currency.Format(v), "", 1, "R", false, 0, "")
		if bold {
			pdf.SetFont("Helvetica", "", 8)
		}
	}
	row("Non-current assets", bs.Assets.NonCurrent, false)
	row("Current assets", bs.Assets.Current, false)
	row("Total assets", bs.Assets.Total, true)
	row("Owner's capital", bs.EquityLiabilities.OwnersCapital, false)
	row("Retained earnings", bs.EquityLiabilities.RetainedEarnings, false)
	row("Current liabilities", bs.EquityLiabilities.CurrentLiabilities, false)
	row("Total equity and liabilities", bs.EquityLiabilities.Total, true)
	pdf.Ln(4)

	// ── Cash flow ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Cash Flow", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	row("Cash from operations", cf.Operations, false)
	row("Cash from investing", cf.Investing, false)
	row("Cash from financing", cf.Financing, false)
	row("Closing cash", cf.ClosingCash, true)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
