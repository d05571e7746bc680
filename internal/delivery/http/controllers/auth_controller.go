package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "cinemashowings/internal/delivery/http/helpers"
	"cinemashowings/internal/domain"
)

// TokenRequest is the request body for POST /auth/token.
type TokenRequest struct {
	ClientID     string `json:"client_id" validate:"required,max=128"`
	ClientSecret string `json:"client_secret" validate:"required,max=256"`
}

// TokenResponse is the response body for POST /auth/token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Token godoc
// @Summary Issue an access token
// @Description Exchange client credentials for a JWT used as Bearer token on the showings, totals and reports endpoints.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body TokenRequest true "Client credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/token [post]
func (c *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.IssueToken(r.Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "could not issue token")
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, TokenResponse{Token: token, TokenType: "Bearer"})
}
