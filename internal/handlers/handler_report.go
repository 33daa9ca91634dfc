package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/spendtrack_backend/internal/apperrors"
	portssvc "github.com/spendtrack/spendtrack_backend/internal/core/ports/services"
	"github.com/spendtrack/spendtrack_backend/internal/dto"
	"github.com/spendtrack/spendtrack_backend/internal/middleware"
	"github.com/spendtrack/spendtrack_backend/internal/pdf"
)

// reportHandler handles HTTP requests for spending reports.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
	baseCurrency     string
}

func newReportHandler(rs portssvc.ReportingSvcFacade, baseCurrency string) *reportHandler {
	return &reportHandler{reportingService: rs, baseCurrency: baseCurrency}
}

// RegisterReportRoutes registers routes related to reports.
func RegisterReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, baseCurrency string) {
	h := newReportHandler(reportingService, baseCurrency)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/monthly", h.getMonthly)
		reports.GET("/pdf", h.exportPDF)
	}
}

// respondReportError maps reporting errors to HTTP statuses. A rate fetch
// failure is the upstream provider's fault, not ours, so it maps to 502.
func respondReportError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrRateFetch):
		logger.Error("Exchange rate fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Exchange rates are currently unavailable"})
	case errors.Is(err, apperrors.ErrUnknownCurrency):
		logger.Warn("Report failed on unknown currency", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// getSummary godoc
// @Summary Spending summary report
// @Description Returns total, average and max spending in the base currency.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ReportSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Unconvertible currency in strict mode"
// @Failure 502 {object} ErrorResponse "Exchange rates unavailable"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportHandler) getSummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondReportError(c, err, "build summary report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportSummaryResponse(summary))
}

// getMonthly godoc
// @Summary Monthly spending report
// @Description Returns per-month spending totals in the base currency, keyed by YYYY-MM.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Unconvertible currency in strict mode"
// @Failure 502 {object} ErrorResponse "Exchange rates unavailable"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportHandler) getMonthly(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	breakdown, err := h.reportingService.Monthly(c.Request.Context(), userID)
	if err != nil {
		respondReportError(c, err, "build monthly report")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(breakdown, h.baseCurrency))
}

// exportPDF godoc
// @Summary Export spending report as PDF
// @Description Builds a PDF containing the summary and monthly breakdown.
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Exchange rates unavailable"
// @Security BearerAuth
// @Router /reports/pdf [get]
func (h *reportHandler) exportPDF(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondReportError(c, err, "export report")
		return
	}

	breakdown, err := h.reportingService.Monthly(c.Request.Context(), userID)
	if err != nil {
		respondReportError(c, err, "export report")
		return
	}

	data, err := pdf.BuildExpenseReport(summary, breakdown)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to render report PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expense_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
