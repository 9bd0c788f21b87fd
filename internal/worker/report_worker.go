package worker

// report_worker.go
// Processes report-email jobs from QueueReportEmail: renders the financial
// report as a PDF and mails it with the text rendering as the body.
// Exponential backoff (max 3 attempts) on the SMTP send; exhausted jobs go
// to the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"

	"dukapos/internal/infra"
	"dukapos/internal/report"
	"dukapos/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ReportEmailPayload is the job envelope sent to QueueReportEmail.
type ReportEmailPayload struct {
	ToEmail   string `json:"to_email"`
	TimeRange string `json:"time_range"`
}

// ReportWorker renders and mails financial reports asynchronously.
type ReportWorker struct {
	reports        service.ReportService
	mailer         *infra.Mailer
	pdfStoragePath string
}

func NewReportWorker(reports service.ReportService, mailer *infra.Mailer, pdfStoragePath string) *ReportWorker {
	return &ReportWorker{reports: reports, mailer: mailer, pdfStoragePath: pdfStoragePath}
}

// Process handles a single report-email job:
//  1. Parse ReportEmailPayload from the job envelope
//  2. Build the report over the requested window
//  3. Render the PDF attachment and the text body
//  4. Send via SMTP with backoff; DLQ on exhaustion
func (w *ReportWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload ReportEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("report_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("report_worker: empty to_email, skipping")
		return
	}
	rng := report.TimeRange(payload.TimeRange)

	resp, err := w.reports.Financial(ctx, rng)
	if err != nil {
		log.Error().Err(err).Str("range", payload.TimeRange).Msg("report_worker: aggregation failed")
		SendToDLQ(ctx, rdb, QueueReportEmail, "report_email", raw, err.Error(), 1)
		return
	}
	bs, err := w.reports.BalanceSheet(ctx)
	if err != nil {
		log.Error().Err(err).Msg("report_worker: balance sheet failed")
		SendToDLQ(ctx, rdb, QueueReportEmail, "report_email", raw, err.Error(), 1)
		return
	}
	cf, err := w.reports.CashFlow(ctx)
	if err != nil {
		log.Error().Err(err).Msg("report_worker: cash flow failed")
		SendToDLQ(ctx, rdb, QueueReportEmail, "report_email", raw, err.Error(), 1)
		return
	}

	pdfPath, err := infra.GenerateReportPDF(payload.TimeRange, resp.Records, bs, cf, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Msg("report_worker: pdf generation failed")
		SendToDLQ(ctx, rdb, QueueReportEmail, "report_email", raw, err.Error(), 1)
		return
	}

	body := report.RenderText(resp.Records, bs, cf)
	subject := fmt.Sprintf("DukaPOS financial report (%s)", payload.TimeRange)

	const maxAttempts = 3
	sendErr := withRetry(ctx, maxAttempts, func(attempt int) error {
		if err := w.mailer.SendReport(payload.ToEmail, subject, body, pdfPath); err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).Str("to", payload.ToEmail).
				Msg("report_worker: send failed")
			return err
		}
		return nil
	})
	if sendErr != nil {
		SendToDLQ(ctx, rdb, QueueReportEmail, "report_email", raw, sendErr.Error(), maxAttempts)
		return
	}
	log.Info().Str("to", payload.ToEmail).Str("range", payload.TimeRange).
		Msg("report_worker: report sent")
}
