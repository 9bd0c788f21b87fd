package report

import (
	"fmt"
	"strings"

	"dukapos/internal/currency"
)

// RenderText produces the monospaced financial report: income statement,
// balance sheet, cash flow, and ratios. Retained earnings in the income
// statement are net profit minus tax minus the absolute value of drawings.
func RenderText(records []PeriodRecord, bs BalanceSheet, cf CashFlow) string {
	totals := Totals(records)
	grossMargin, netMargin := Margins(totals)
	retained := totals.NetProfit.Sub(totals.TaxPaid).Sub(totals.Drawings.Abs())

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("FINANCIAL REPORT")
	line("================")
	line("")
	line("INCOME STATEMENT")
	line("----------------")
	line("Revenue:                    %s", currency.Format(totals.Revenue))
	line("Cost of Sales:             (%s)", currency.Format(totals.CostOfSales))
	line("                           ------------------")
	line("Gross Profit:               %s (%s%% of revenue)", currency.Format(totals.GrossProfit), grossMargin.StringFixed(2))
	line("Operating Expenses:        (%s)", currency.Format(totals.OperatingExpenses))
	line("                           ------------------")
	line("Net Profit:                 %s (%s%% of revenue)", currency.Format(totals.NetProfit), netMargin.StringFixed(2))
	line("Tax Paid:                  (%s)", currency.Format(totals.TaxPaid))
	line("Drawings:                  (%s)", currency.Format(totals.Drawings.Abs()))
	line("                           ------------------")
	line("Retained Earnings:          %s", currency.Format(retained))
	line("")
	line("BALANCE SHEET")
	line("-------------")
	line("ASSETS")
	line("Non-Current Assets:         %s", currency.Format(bs.Assets.NonCurrent))
	line("Current Assets:             %s", currency.Format(bs.Assets.Current))
	line("                           ------------------")
	line("Total Assets:               %s", currency.Format(bs.Assets.Total))
	line("")
	line("EQUITY AND LIABILITIES")
	line("Owner's Capital:            %s", currency.Format(bs.EquityLiabilities.OwnersCapital))
	line("Retained Earnings:          %s", currency.Format(bs.EquityLiabilities.RetainedEarnings))
	line("Current Liabilities:        %s", currency.Format(bs.EquityLiabilities.CurrentLiabilities))
	line("                           ------------------")
	line("Total Equity and Liabilities: %s", currency.Format(bs.EquityLiabilities.Total))
	line("")
	line("CASH FLOW")
	line("---------")
	line("Net Cash from Operations:   %s", currency.Format(cf.Operations))
	line("Net Cash from Investing:    %s", currency.Format(cf.Investing))
	line("Net Cash from Financing:    %s", currency.Format(cf.Financing))
	line("                           ------------------")
	line("Closing Cash:               %s", currency.Format(cf.ClosingCash))
	line("")
	line("FINANCIAL RATIOS")
	line("----------------")
	line("Gross Profit Margin:        %s%%", grossMargin.StringFixed(2))
	line("Net Profit Margin:          %s%%", netMargin.StringFixed(2))

	return b.String()
}

// RenderHTML produces a styled, print-ready document with the same sections
// as RenderText. The caller hands it to the client, which opens it in a new
// window and invokes the platform print dialog.
func RenderHTML(records []PeriodRecord, bs BalanceSheet, cf CashFlow) string {
	totals := Totals(records)
	grossMargin, netMargin := Margins(totals)
	retained := totals.NetProfit.Sub(totals.TaxPaid).Sub(totals.Drawings.Abs())

	row := func(label, value string, total bool) string {
		cls := ""
		if total {
			cls = ` class="total"`
		}
		return fmt.Sprintf("      <tr%s><td>%s</td><td class=\"number\">%s</td></tr>\n", cls, label, value)
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
  <title>Financial Report</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 40px; }
    h1, h2 { color: #333; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
    th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
    th { background-color: #f2f2f2; }
    .number { text-align: right; }
    .total { font-weight: bold; }
    .section { margin-bottom: 30px; }
  </style>
</head>
<body>
  <h1>Financial Report</h1>

  <div class="section">
    <h2>Income Statement</h2>
    <table>
`)
	b.WriteString(row("Revenue", currency.Format(totals.Revenue), false))
	b.WriteString(row("Cost of Sales", "("+currency.Format(totals.CostOfSales)+")", false))
	b.WriteString(row("Gross Profit", fmt.Sprintf("%s (%s%% of revenue)", currency.Format(totals.GrossProfit), grossMargin.StringFixed(2)), true))
	b.WriteString(row("Operating Expenses", "("+currency.Format(totals.OperatingExpenses)+")", false))
	b.WriteString(row("Net Profit", fmt.Sprintf("%s (%s%% of revenue)", currency.Format(totals.NetProfit), netMargin.StringFixed(2)), true))
	b.WriteString(row("Tax Paid", "("+currency.Format(totals.TaxPaid)+")", false))
	b.WriteString(row("Drawings", "("+currency.Format(totals.Drawings.Abs())+")", false))
	b.WriteString(row("Retained Earnings", currency.Format(retained), true))
	b.WriteString(`    </table>
  </div>

  <div class="section">
    <h2>Balance Sheet</h2>
    <table>
      <tr><th colspan="2">ASSETS</th></tr>
`)
	b.WriteString(row("Non-Current Assets", currency.Format(bs.Assets.NonCurrent), false))
	b.WriteString(row("Current Assets", currency.Format(bs.Assets.Current), false))
	b.WriteString(row("Total Assets", currency.Format(bs.Assets.Total), true))
	b.WriteString("      <tr><th colspan=\"2\">EQUITY AND LIABILITIES</th></tr>\n")
	b.WriteString(row("Owner's Capital", currency.Format(bs.EquityLiabilities.OwnersCapital), false))
	b.WriteString(row("Retained Earnings", currency.Format(bs.EquityLiabilities.RetainedEarnings), false))
	b.WriteString(row("Current Liabilities", currency.Format(bs.EquityLiabilities.CurrentLiabilities), false))
	b.WriteString(row("Total Equity and Liabilities", currency.Format(bs.EquityLiabilities.Total), true))
	b.WriteString(`    </table>
  </div>

  <div class="section">
    <h2>Cash Flow</h2>
    <table>
`)
	b.WriteString(row("Net Cash from Operations", currency.Format(cf.Operations), false))
	b.WriteString(row("Net Cash from Investing", currency.Format(cf.Investing), false))
	b.WriteString(row("Net Cash from Financing", currency.Format(cf.Financing), false))
	b.WriteString(row("Closing Cash", currency.Format(cf.ClosingCash), true))
	b.WriteString(`    </table>
  </div>

  <div class="section">
    <h2>Financial Ratios</h2>
    <p>Gross Profit Margin: ` + grossMargin.StringFixed(2) + `%</p>
    <p>Net Profit Margin: ` + netMargin.StringFixed(2) + `%</p>
  </div>
</body>
</html>
`)
	return b.String()
}
