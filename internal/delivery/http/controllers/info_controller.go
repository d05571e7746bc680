package controllers

import (
	"net/http"

	h "cinemashowings/internal/delivery/http/helpers"
	"cinemashowings/internal/domain"
)

// TagsResponse lists the tags accepted by the cinema query parameter.
type TagsResponse struct {
	Tags []string `json:"tags"`
}

type InfoController struct {
	Service domain.ShowingsService
}

func NewInfoController(svc domain.ShowingsService) *InfoController {
	return &InfoController{Service: svc}
}

// Zones godoc
// @Summary List zone and city tags
// @Tags info
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains tags"
// @Router /info/zones [get]
func (c *InfoController) Zones(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, TagsResponse{Tags: c.Service.ZoneTags()})
}

// Cinemas godoc
// @Summary List cinema tags
// @Tags info
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains tags"
// @Router /info/cinemas [get]
func (c *InfoController) Cinemas(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, TagsResponse{Tags: c.Service.CinemaTags()})
}
