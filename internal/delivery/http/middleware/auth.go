package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "cinemashowings/internal/delivery/http/helpers"
	"cinemashowings/internal/domain"
)

type contextKey string

const clientIDKey contextKey = "clientID"

// SetClientID returns a context carrying the authenticated client ID.
func SetClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// ClientIDFromContext returns the authenticated client ID from the context, if present.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and stores the client ID
// in the request context. Missing or invalid tokens get a 401 and next is not called.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, problem := bearerToken(r.Header.Get("Authorization"))
			if problem != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, problem)
				return
			}
			clientID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "request_id", RequestIDFromContext(r.Context()), "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetClientID(r.Context(), clientID)))
		}
	}
}

// bearerToken extracts the token from an Authorization header value, or describes
// what is wrong with it.
func bearerToken(header string) (token, problem string) {
	if header == "" {
		return "", "missing authorization header"
	}
	scheme, rest, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", "invalid authorization format"
	}
	if token = strings.TrimSpace(rest); token == "" {
		return "", "missing token"
	}
	return token, ""
}
