package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ridwanfathin/claw-dashboard-service/internal/daterange"
	"github.com/ridwanfathin/claw-dashboard-service/internal/model"
	"github.com/ridwanfathin/claw-dashboard-service/internal/repository"
	"github.com/ridwanfathin/claw-dashboard-service/internal/service"
	"github.com/ridwanfathin/claw-dashboard-service/internal/upstream"
)

// ReportHandler serves the dashboard revenue reports
type ReportHandler struct {
	reports service.ReportService
	log     *logrus.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports service.ReportService, log *logrus.Logger) *ReportHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ReportHandler{
		reports: reports,
		log:     log,
	}
}

// parseReportRequest reads the filter, explicit dates, and store scope
func parseReportRequest(c *gin.Context) (service.ReportRequest, error) {
	req := service.ReportRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		StoreID:   c.Query("store_id"),
	}

	if raw := c.Query("filter"); raw != "" {
		filter, err := daterange.ParseFilter(raw)
		if err != nil {
			return req, err
		}
		req.Filter = filter
	}

	return req, nil
}

// GetDateRange resolves a quick date filter
// @Summary Resolve a date filter
// @Description Returns the inclusive date range and day count of a quick filter, relative to today
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param filter query string false "last_1_day, last_3_days, last_7_days, last_30_days, today, yesterday, this_week, this_month" default(last_7_days)
// @Success 200 {object} model.DateRangeResponse "Resolved range"
// @Failure 400 {object} model.ErrorResponse "Unknown filter"
// @Router /v1/reports/date-range [get]
func (h *ReportHandler) GetDateRange(c *gin.Context) {
	req, err := parseReportRequest(c)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("filter", err.Error()))
		return
	}

	rng, days, err := h.reports.ResolveRange(req)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("start_date", err.Error()))
		return
	}

	filter := string(req.Filter)
	if filter == "" && req.StartDate == "" && req.EndDate == "" {
		filter = string(daterange.Last7Days)
	}

	respondOK(c, model.DateRangeResponse{
		Filter:    filter,
		StartDate: rng.Start,
		EndDate:   rng.End,
		Days:      days,
	})
}

// GetRevenueReport builds the revenue report of a date range
// @Summary Revenue report
// @Description Fetches every payments page of the range and aggregates totals, averages, and machine rankings
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param filter query string false "Quick filter" default(last_7_days)
// @Param start_date query string false "Explicit start date (YYYY-MM-DD), overrides filter"
// @Param end_date query string false "Explicit end date (YYYY-MM-DD), overrides filter"
// @Param store_id query string false "Store ID"
// @Success 200 {object} service.RevenueReportResult "Revenue report"
// @Failure 400 {object} model.ErrorResponse "Invalid filter or dates"
// @Failure 502 {object} model.ErrorResponse "Upstream fetch failed"
// @Router /v1/reports/revenue [get]
func (h *ReportHandler) GetRevenueReport(c *gin.Context) {
	req, err := parseReportRequest(c)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("filter", err.Error()))
		return
	}

	result, err := h.reports.RevenueReport(c.Request.Context(), sessionToken(c), req)
	if err != nil {
		if errors.Is(err, daterange.ErrInvalidRange) {
			respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("start_date", err.Error()))
			return
		}

		logError(h.log, c, err, "revenue report failed")

		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			respondBadGateway(c, ErrReportFetch, newErrorDetail("upstream_status", apiErr.Error()))
			return
		}
		respondBadGateway(c, ErrReportFetch, newErrorDetail("upstream", err.Error()))
		return
	}

	respondOK(c, result)
}

// GetHistory lists stored report snapshots
// @Summary Report history
// @Description Lists the totals of previously built revenue reports, newest first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of snapshots" default(30)
// @Success 200 {object} model.ReportHistoryResponse "Snapshots"
// @Failure 400 {object} model.ErrorResponse "Invalid limit"
// @Failure 503 {object} model.ErrorResponse "History not configured"
// @Router /v1/reports/history [get]
func (h *ReportHandler) GetHistory(c *gin.Context) {
	limit, err := getQueryInt(c, "limit", repository.DefaultHistoryLimit)
	if err != nil || limit < 1 || limit > 200 {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("limit", "limit must be between 1 and 200"))
		return
	}

	snapshots, err := h.reports.History(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryUnavailable) {
			respondServiceUnavailable(c, ErrHistoryDisabled)
			return
		}
		logError(h.log, c, err, "failed to list report history")
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, model.ReportHistoryResponse{
		Snapshots: snapshots,
		Count:     len(snapshots),
	})
}

// RegisterRoutes registers the report routes
func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	reports := router.Group("/reports", auth)
	{
		reports.GET("/date-range", h.GetDateRange)
		reports.GET("/revenue", h.GetRevenueReport)
		reports.GET("/history", h.GetHistory)
	}
}
