package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinemashowings/internal/domain"
)

type authService struct {
	clients     map[string]domain.Client
	hasher      domain.SecretHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService for the given API clients. Clients without
// an ID or secret hash are ignored.
func NewAuthService(clients []domain.Client, hasher domain.SecretHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	byID := make(map[string]domain.Client, len(clients))
	for _, c := range clients {
		if c.ID == "" || c.SecretHash == "" {
			continue
		}
		byID[c.ID] = c
	}
	return &authService{
		clients:     byID,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) IssueToken(ctx context.Context, clientID, clientSecret string) (string, error) {
	client, ok := s.clients[strings.TrimSpace(clientID)]
	if !ok || clientSecret == "" {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(client.SecretHash, clientSecret); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(client.ID, client.Roles, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
