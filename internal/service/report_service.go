package service

import (
	"context"
	"errors"
	"time"

	"dukapos/internal/dto"
	"dukapos/internal/report"
	"dukapos/internal/repository"

	"github.com/shopspring/decimal"
)

var ErrUnknownTimeRange = errors.New("unknown time range")

// ReportService builds the financial report over a trailing window ending
// now. Aggregation itself is pure (internal/report); this service only
// fetches the window and assembles the pieces.
type ReportService interface {
	Financial(ctx context.Context, rng report.TimeRange) (*dto.FinancialReportResponse, error)
	BalanceSheet(ctx context.Context) (report.BalanceSheet, error)
	CashFlow(ctx context.Context) (report.CashFlow, error)
	RenderText(ctx context.Context, rng report.TimeRange) (string, error)
	RenderHTML(ctx context.Context, rng report.TimeRange) (string, error)
}

type reportService struct {
	transactions repository.TransactionRepository
	now          func() time.Time
}

func NewReportService(transactions repository.TransactionRepository) ReportService {
	return &reportService{transactions: transactions, now: time.Now}
}

// NewReportServiceAt pins the clock, for deterministic windows in tests.
func NewReportServiceAt(transactions repository.TransactionRepository, now func() time.Time) ReportService {
	return &reportService{transactions: transactions, now: now}
}

func (s *reportService) Financial(ctx context.Context, rng report.TimeRange) (*dto.FinancialReportResponse, error) {
	if !report.ValidRange(string(rng)) {
		return nil, ErrUnknownTimeRange
	}
	start, end := rng.Window(s.now())
	txs, err := s.transactions.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	records := report.Aggregate(rng, txs)
	totals := report.Totals(records)
	gross, net := report.Margins(totals)
	return &dto.FinancialReportResponse{
		TimeRange:   string(rng),
		Records:     records,
		Totals:      totals,
		GrossMargin: gross,
		NetMargin:   net,
	}, nil
}

func (s *reportService) BalanceSheet(ctx context.Context) (report.BalanceSheet, error) {
	sum, err := s.transactions.SumTotals(ctx)
	if err != nil {
		return report.BalanceSheet{}, err
	}
	return report.BuildBalanceSheet(decimal.NewFromFloat(sum)), nil
}

func (s *reportService) CashFlow(ctx context.Context) (report.CashFlow, error) {
	sum, err := s.transactions.SumTotals(ctx)
	if err != nil {
		return report.CashFlow{}, err
	}
	return report.BuildCashFlow(decimal.NewFromFloat(sum)), nil
}

func (s *reportService) RenderText(ctx context.Context, rng report.TimeRange) (string, error) {
	records, bs, cf, err := s.artifacts(ctx, rng)
	if err != nil {
		return "", err
	}
	return report.RenderText(records, bs, cf), nil
}

func (s *reportService) RenderHTML(ctx context.Context, rng report.TimeRange) (string, error) {
	records, bs, cf, err := s.artifacts(ctx, rng)
	if err != nil {
		return "", err
	}
	return report.RenderHTML(records, bs, cf), nil
}

func (s *reportService) artifacts(ctx context.Context, rng report.TimeRange) ([]report.PeriodRecord, report.BalanceSheet, report.CashFlow, error) {
	resp, err := s.Financial(ctx, rng)
	if err != nil {
		return nil, report.BalanceSheet{}, report.CashFlow{}, err
	}
	bs, err := s.BalanceSheet(ctx)
	if err != nil {
		return nil, report.BalanceSheet{}, report.CashFlow{}, err
	}
	cf, err := s.CashFlow(ctx)
	if err != nil {
		return nil, report.BalanceSheet{}, report.CashFlow{}, err
	}
	return resp.Records, bs, cf, nil
}
