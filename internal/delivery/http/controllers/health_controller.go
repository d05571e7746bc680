package controllers

import (
	"net/http"

	h "cinemashowings/internal/delivery/http/helpers"
)

// HealthResponse reports liveness.
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

type HealthController struct {
	Environment string
}

func NewHealthController(environment string) *HealthController {
	return &HealthController{Environment: environment}
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "UP", Environment: c.Environment})
}
