package controllers

import (
	"log/slog"
	"net/http"

	h "cinemashowings/internal/delivery/http/helpers"
	"cinemashowings/internal/domain"
)

// TotalsReportRequest is the request body for POST /reports/totals.
type TotalsReportRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Date   string `json:"date" validate:"max=40"`
	Format string `json:"format" validate:"max=20"`
}

// TotalsReportResponse summarises the report that was sent.
type TotalsReportResponse struct {
	Email  string `json:"email"`
	Date   string `json:"date"`
	Format string `json:"format,omitempty"`
	Total  int    `json:"total"`
}

type ReportsController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

func NewReportsController(logger *slog.Logger, svc domain.ReportService) *ReportsController {
	return &ReportsController{
		Logger:  logger,
		Service: svc,
	}
}

// TotalsReport godoc
// @Summary Email the totals report
// @Description Compute the movie, format and cinema leaderboards for a date and email them to the given address.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TotalsReportRequest true "Recipient and filters"
// @Success 200 {object} helpers.APIResponse "data contains email, date and total"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/totals [post]
func (c *ReportsController) TotalsReport(w http.ResponseWriter, r *http.Request) {
	var req TotalsReportRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	report, err := c.Service.SendTotalsReport(r.Context(), req.Email, req.Date, req.Format)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not send report")
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, TotalsReportResponse{
		Email:  report.Email,
		Date:   report.Date,
		Format: report.Format,
		Total:  report.Total,
	})
}
