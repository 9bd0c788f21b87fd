// Package report aggregates completed transactions into financial-statement
// records and renders them as text, HTML, or PDF.
package report

import (
	"fmt"
	"sort"
	"time"

	"dukapos/internal/model"

	"github.com/shopspring/decimal"
)

// TimeRange selects the aggregation window and the bucket granularity.
type TimeRange string

const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
)

// ValidRange reports whether s is one of the four selectors.
func ValidRange(s string) bool {
	switch TimeRange(s) {
	case RangeDay, RangeWeek, RangeMonth, RangeYear:
		return true
	}
	return false
}

// Window returns [start, end] for a selector, anchored at now.
func (r TimeRange) Window(now time.Time) (start, end time.Time) {
	end = now
	switch r {
	case RangeDay:
		start = now.AddDate(0, 0, -1)
	case RangeWeek:
		start = now.AddDate(0, 0, -7)
	case RangeMonth:
		start = now.AddDate(0, -1, 0)
	case RangeYear:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, 0, -1)
	}
	return start, end
}

// Placeholder ratios applied where real ledger data is absent. A future
// version should source these from configured rates.
var (
	operatingExpenseRate = decimal.NewFromFloat(0.10)
	taxRate              = decimal.NewFromFloat(0.05)
	drawingsRate         = decimal.NewFromFloat(0.20)
)

// PeriodRecord is one income-statement line per bucket. Derived, never stored.
type PeriodRecord struct {
	Period            string          `json:"period"`
	Revenue           decimal.Decimal `json:"revenue"`
	CostOfSales       decimal.Decimal `json:"cost_of_sales"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	TaxPaid           decimal.Decimal `json:"tax_paid"`
	Drawings          decimal.Decimal `json:"drawings"`
}

// PeriodKey buckets a timestamp for the given granularity.
//
// Week mode uses ceil(dayOfMonth/7), a coarse numbering that is NOT an ISO
// week and collides across months ("2025-W1" repeats every month). Kept for
// behavioral parity with the system this replaces.
func PeriodKey(r TimeRange, t time.Time) string {
	switch r {
	case RangeDay:
		return t.Format("2006-01-02")
	case RangeWeek:
		week := (t.Day() + 6) / 7
		return fmt.Sprintf("%d-W%d", t.Year(), week)
	case RangeMonth:
		return t.Format("2006-01")
	case RangeYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// Aggregate buckets transactions by period key and reduces each bucket into
// a PeriodRecord:
//
//	revenue      = Σ transaction totals
//	cost of sales = Σ quantity × unit price over line items
//	gross profit = revenue − cost of sales
//	opex / tax / drawings = fixed ratios of gross profit
//	net profit   = gross − opex − tax − drawings
//
// The reduction is pure and order-independent; records come back sorted by
// period key. No cross-bucket carry-forward.
func Aggregate(r TimeRange, txs []model.Transaction) []PeriodRecord {
	type bucket struct {
		revenue     decimal.Decimal
		costOfSales decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	for _, tx := range txs {
		key := PeriodKey(r, tx.CreatedAt)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{revenue: decimal.Zero, costOfSales: decimal.Zero}
			buckets[key] = b
		}
		b.revenue = b.revenue.Add(tx.TotalAmount)
		for _, item := range tx.Items {
			b.costOfSales = b.costOfSales.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]PeriodRecord, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		gross := b.revenue.Sub(b.costOfSales)
		opex := gross.Mul(operatingExpenseRate)
		tax := gross.Mul(taxRate)
		drawings := gross.Mul(drawingsRate)
		net := gross.Sub(opex).Sub(tax).Sub(drawings)

		records = append(records, PeriodRecord{
			Period:            k,
			Revenue:           b.revenue,
			CostOfSales:       b.costOfSales,
			GrossProfit:       gross,
			OperatingExpenses: opex,
			NetProfit:         net,
			TaxPaid:           tax,
			Drawings:          drawings,
		})
	}
	return records
}

// Totals folds a slice of period records into a single record for rendering.
func Totals(records []PeriodRecord) PeriodRecord {
	acc := PeriodRecord{
		Period:            "total",
		Revenue:           decimal.Zero,
		CostOfSales:       decimal.Zero,
		GrossProfit:       decimal.Zero,
		OperatingExpenses: decimal.Zero,
		NetProfit:         decimal.Zero,
		TaxPaid:           decimal.Zero,
		Drawings:          decimal.Zero,
	}
	for _, r := range records {
		acc.Revenue = acc.Revenue.Add(r.Revenue)
		acc.CostOfSales = acc.CostOfSales.Add(r.CostOfSales)
		acc.GrossProfit = acc.GrossProfit.Add(r.GrossProfit)
		acc.OperatingExpenses = acc.OperatingExpenses.Add(r.OperatingExpenses)
		acc.NetProfit = acc.NetProfit.Add(r.NetProfit)
		acc.TaxPaid = acc.TaxPaid.Add(r.TaxPaid)
		acc.Drawings = acc.Drawings.Add(r.Drawings)
	}
	return acc
}

// Margins returns gross and net profit as percentages of revenue,
// both exactly zero when revenue is zero.
func Margins(totals PeriodRecord) (gross, net decimal.Decimal) {
	if totals.Revenue.IsZero() {
		return decimal.Zero, decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	gross = totals.GrossProfit.Div(totals.Revenue).Mul(hundred)
	net = totals.NetProfit.Div(totals.Revenue).Mul(hundred)
	return gross, net
}

// BalanceSheet is a snapshot with fixed figures for everything except current
// assets, which are derived from the transaction history. Both sides are
// asserted equal by the fixed data, not verified here.
type BalanceSheet struct {
	Assets struct {
		NonCurrent decimal.Decimal `json:"non_current"`
		Current    decimal.Decimal `json:"current"`
		Total      decimal.Decimal `json:"total"`
	} `json:"assets"`
	EquityLiabilities struct {
		OwnersCapital      decimal.Decimal `json:"owners_capital"`
		RetainedEarnings   decimal.Decimal `json:"retained_earnings"`
		CurrentLiabilities decimal.Decimal `json:"current_liabilities"`
		Total              decimal.Decimal `json:"total"`
	} `json:"equity_liabilities"`
}

// Fixed balance-sheet figures; only current assets vary with sales.
var (
	nonCurrentAssets   = decimal.NewFromInt(1759375)
	ownersCapital      = decimal.NewFromInt(19875000)
	currentLiabilities = decimal.NewFromInt(3250000)
	retainedEarnings   = decimal.NewFromInt(-2215225)
)

// BuildBalanceSheet derives current assets as the cash balance over all
// recorded transaction totals.
func BuildBalanceSheet(transactionTotals decimal.Decimal) BalanceSheet {
	var bs BalanceSheet
	bs.Assets.NonCurrent = nonCurrentAssets
	bs.Assets.Current = transactionTotals
	bs.Assets.Total = nonCurrentAssets.Add(transactionTotals)
	bs.EquityLiabilities.OwnersCapital = ownersCapital
	bs.EquityLiabilities.RetainedEarnings = retainedEarnings
	bs.EquityLiabilities.CurrentLiabilities = currentLiabilities
	bs.EquityLiabilities.Total = ownersCapital.Add(retainedEarnings).Add(currentLiabilities)
	return bs
}

// CashFlow is a simplified statement: operations carry the full transaction
// volume, investing and financing are zero in this revision.
type CashFlow struct {
	Operations  decimal.Decimal `json:"operations"`
	Investing   decimal.Decimal `json:"investing"`
	Financing   decimal.Decimal `json:"financing"`
	ClosingCash decimal.Decimal `json:"closing_cash"`
}

// BuildCashFlow derives the statement from the total transaction volume.
func BuildCashFlow(transactionTotals decimal.Decimal) CashFlow {
	return CashFlow{
		Operations:  transactionTotals,
		Investing:   decimal.Zero,
		Financing:   decimal.Zero,
		ClosingCash: transactionTotals,
	}
}
