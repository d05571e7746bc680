package controllers

import (
	"log/slog"
	"net/http"

	h "cinemashowings/internal/delivery/http/helpers"
	"cinemashowings/internal/domain"
	"cinemashowings/internal/services"
)

// ShowingsRequest holds the query string of GET /showings.
type ShowingsRequest struct {
	Movie     string `query:"movie" validate:"max=120"`
	Date      string `query:"date" validate:"max=40"`
	Cinema    string `query:"cinema" validate:"max=80"`
	Format    string `query:"format" validate:"max=20"`
	Separator string `query:"separator"`
}

func showingsRequestFrom(r *http.Request) ShowingsRequest {
	q := r.URL.Query()
	return ShowingsRequest{
		Movie:     q.Get("movie"),
		Date:      q.Get("date"),
		Cinema:    q.Get("cinema"),
		Format:    q.Get("format"),
		Separator: q.Get("separator"),
	}
}

// ShowingsResponse is the rendered listing: the session count and the chat messages to send, in order.
type ShowingsResponse struct {
	Total  int               `json:"total"`
	Chunks []string          `json:"chunks"`
	Dates  []domain.ShowDate `json:"dates,omitempty"`
}

type ShowingsController struct {
	Logger  *slog.Logger
	Service domain.ShowingsService
}

func NewShowingsController(logger *slog.Logger, svc domain.ShowingsService) *ShowingsController {
	return &ShowingsController{
		Logger:  logger,
		Service: svc,
	}
}

// Search godoc
// @Summary Search showtimes
// @Description Look up showtimes across both chains. cinema may be a cinema, zone or city tag; an empty date means today (or every listed day for a single cinema or zone). The result is rendered as chat messages split at the chosen separator. Pass raw=true to also receive the structured dates.
// @Tags showings
// @Produce json
// @Security BearerAuth
// @Param movie query string false "Movie title, matched loosely in both directions"
// @Param date query string false "Date label such as 05 marzo or 5/3"
// @Param cinema query string false "Cinema, zone or city tag"
// @Param format query string false "Format filter such as 2D, 3D, SUB, ESP"
// @Param separator query string false "Page split: MOVIE, CINEMA (default) or SHOWTIME"
// @Param raw query bool false "Include structured dates"
// @Success 200 {object} helpers.APIResponse "data contains total and chunks"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /showings [get]
func (c *ShowingsController) Search(w http.ResponseWriter, r *http.Request) {
	req := showingsRequestFrom(r)
	if !h.ValidateStruct(w, &req) {
		return
	}
	mode, err := domain.ParseSeparatorMode(req.Separator)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}

	dates := c.Service.Search(r.Context(), domain.Query{
		Movie:  req.Movie,
		Date:   req.Date,
		Cinema: req.Cinema,
		Format: req.Format,
	})
	msg := services.RenderMessage(dates, mode)
	c.Logger.DebugContext(r.Context(), "showings rendered", "dates", len(dates), "total", msg.Total, "pages", len(msg.Pages))

	resp := ShowingsResponse{Total: msg.Total, Chunks: msg.Chunks()}
	if r.URL.Query().Get("raw") == "true" {
		resp.Dates = dates
	}
	h.WriteJSONSuccess(w, http.StatusOK, resp)
}
