package dto

import (
	"dukapos/internal/report"

	"github.com/shopspring/decimal"
)

type FinancialReportResponse struct {
	TimeRange   string                `json:"time_range"`
	Records     []report.PeriodRecord `json:"records"`
	Totals      report.PeriodRecord   `json:"totals"`
	GrossMargin decimal.Decimal       `json:"gross_margin_pct"`
	NetMargin   decimal.Decimal       `json:"net_margin_pct"`
}

type EmailReportRequest struct {
	ToEmail   string `json:"to_email"   validate:"required,email"`
	TimeRange string `json:"time_range" validate:"required,oneof=day week month year"`
}
