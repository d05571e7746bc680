package controllers

import (
	"context"
	"log/slog"
	"net/http"

	h "cinemashowings/internal/delivery/http/helpers"
	"cinemashowings/internal/domain"
)

// TotalsRequest holds the query string of the GET /totals endpoints.
type TotalsRequest struct {
	Date   string `query:"date" validate:"max=40"`
	Format string `query:"format" validate:"max=20"`
}

// TotalsResponse is one page of a leaderboard plus its chat rendering.
type TotalsResponse struct {
	Entries    domain.Tally     `json:"entries"`
	Text       string           `json:"text"`
	Pagination h.PaginationMeta `json:"pagination"`
}

type TotalsController struct {
	Logger  *slog.Logger
	Service domain.ShowingsService
}

func NewTotalsController(logger *slog.Logger, svc domain.ShowingsService) *TotalsController {
	return &TotalsController{
		Logger:  logger,
		Service: svc,
	}
}

// Movies godoc
// @Summary Sessions per movie
// @Description Count sessions per movie across every cinema of both chains, merging near-identical titles. Sorted by count, highest first.
// @Tags totals
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date label; empty means today"
// @Param format query string false "Format filter"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Entries per page (default 50, max 200)"
// @Success 200 {object} helpers.APIResponse "data contains entries, text and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /totals/movies [get]
func (c *TotalsController) Movies(w http.ResponseWriter, r *http.Request) {
	c.serve(w, r, c.Service.MovieTotals)
}

// Formats godoc
// @Summary Sessions per format
// @Description Count sessions per projection format across both chains.
// @Tags totals
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date label; empty means today"
// @Param format query string false "Format filter"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Entries per page (default 50, max 200)"
// @Success 200 {object} helpers.APIResponse "data contains entries, text and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /totals/formats [get]
func (c *TotalsController) Formats(w http.ResponseWriter, r *http.Request) {
	c.serve(w, r, c.Service.FormatTotals)
}

// Cinemas godoc
// @Summary Sessions per cinema
// @Description Count sessions per cinema across both chains.
// @Tags totals
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date label; empty means today"
// @Param format query string false "Format filter"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Entries per page (default 50, max 200)"
// @Success 200 {object} helpers.APIResponse "data contains entries, text and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /totals/cinemas [get]
func (c *TotalsController) Cinemas(w http.ResponseWriter, r *http.Request) {
	c.serve(w, r, c.Service.CinemaTotals)
}

func (c *TotalsController) serve(w http.ResponseWriter, r *http.Request, tally func(ctx context.Context, date, format string) domain.Tally) {
	q := r.URL.Query()
	req := TotalsRequest{Date: q.Get("date"), Format: q.Get("format")}
	if !h.ValidateStruct(w, &req) {
		return
	}
	p := h.ParsePagination(r)

	all := tally(r.Context(), req.Date, req.Format)
	page := all.Page(p)
	h.WriteJSONSuccess(w, http.StatusOK, TotalsResponse{
		Entries:    page,
		Text:       page.String(),
		Pagination: h.NewPaginationMeta(p, len(all)),
	})
}
