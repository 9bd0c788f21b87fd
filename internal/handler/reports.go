package handler

import (
	"net/http"

	"dukapos/internal/apierror"
	"dukapos/internal/dto"
	"dukapos/internal/infra"
	"dukapos/internal/report"
	"dukapos/internal/service"
	"dukapos/internal/worker"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	svc            service.ReportService
	dispatcher     *worker.Dispatcher
	pdfStoragePath string
}

func NewReportsHandler(svc service.ReportService, dispatcher *worker.Dispatcher, pdfStoragePath string) *ReportsHandler {
	return &ReportsHandler{svc: svc, dispatcher: dispatcher, pdfStoragePath: pdfStoragePath}
}

// timeRange reads and validates the ?range= selector; day is the default.
func timeRange(c *gin.Context) (report.TimeRange, bool) {
	rng := c.DefaultQuery("range", string(report.RangeDay))
	if !report.ValidRange(rng) {
		c.JSON(http.StatusBadRequest, apierror.New("range must be one of: day, week, month, year"))
		return "", false
	}
	return report.TimeRange(rng), true
}

// Financial godoc
// @Summary Financial report as JSON
// @Tags reports
// @Produce json
// @Param range query string false "day|week|month|year"
// @Success 200 {object} dto.FinancialReportResponse
// @Router /v1/reports/financial [get]
func (h *ReportsHandler) Financial(c *gin.Context) {
	rng, ok := timeRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.Financial(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) BalanceSheet(c *gin.Context) {
	bs, err := h.svc.BalanceSheet(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build balance sheet"))
		return
	}
	c.JSON(http.StatusOK, bs)
}

func (h *ReportsHandler) CashFlow(c *gin.Context) {
	cf, err := h.svc.CashFlow(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build cash flow"))
		return
	}
	c.JSON(http.StatusOK, cf)
}

// Text renders the report as a monospaced plain-text block.
func (h *ReportsHandler) Text(c *gin.Context) {
	rng, ok := timeRange(c)
	if !ok {
		return
	}
	out, err := h.svc.RenderText(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render report"))
		return
	}
	c.String(http.StatusOK, out)
}

// HTML renders a print-ready document; the client opens it and prints.
func (h *ReportsHandler) HTML(c *gin.Context) {
	rng, ok := timeRange(c)
	if !ok {
		return
	}
	out, err := h.svc.RenderHTML(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render report"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// PDF generates the report PDF on demand and streams it back.
func (h *ReportsHandler) PDF(c *gin.Context) {
	rng, ok := timeRange(c)
	if !ok {
		return
	}
	resp, err := h.svc.Financial(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build report"))
		return
	}
	bs, err := h.svc.BalanceSheet(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build balance sheet"))
		return
	}
	cf, err := h.svc.CashFlow(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build cash flow"))
		return
	}
	path, err := infra.GenerateReportPDF(string(rng), resp.Records, bs, cf, h.pdfStoragePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to generate PDF"))
		return
	}
	c.FileAttachment(path, "financial_report.pdf")
}

// Email enqueues an async report-email job; the worker pool picks it up.
func (h *ReportsHandler) Email(c *gin.Context) {
	var req dto.EmailReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	payload := worker.ReportEmailPayload{ToEmail: req.ToEmail, TimeRange: req.TimeRange}
	if err := h.dispatcher.EnqueueReportEmail(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to enqueue report email"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
