package domain

import (
	"context"
	"time"
)

// Client is an API consumer (the chat bot) authenticated by client credentials.
type Client struct {
	ID         string
	SecretHash string
	Roles      []string
}

// SecretHasher hashes and verifies client secrets.
// Implementations may use bcrypt, argon2, etc.
type SecretHasher interface {
	Hash(secret string) (hash string, err error)
	Compare(hash, secret string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated client.
type TokenIssuer interface {
	Issue(clientID string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated client ID.
type TokenVerifier interface {
	Verify(token string) (clientID string, err error)
}

// AuthService exchanges client credentials for an access token.
type AuthService interface {
	IssueToken(ctx context.Context, clientID, clientSecret string) (string, error)
}
