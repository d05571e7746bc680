package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinemashowings/internal/domain"
)

// plainHasher treats "hash:<secret>" as the hash of secret.
type plainHasher struct{}

func (plainHasher) Hash(secret string) (string, error) { return "hash:" + secret, nil }

func (plainHasher) Compare(hash, secret string) error {
	if hash != "hash:"+secret {
		return errors.New("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	clientID string
	roles    []string
	expiry   time.Duration
	err      error
}

func (f *fakeIssuer) Issue(clientID string, roles []string, expiry time.Duration) (string, error) {
	f.clientID, f.roles, f.expiry = clientID, roles, expiry
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + clientID, nil
}

func TestAuthService_IssueToken(t *testing.T) {
	clients := []domain.Client{
		{ID: "chat-bot", SecretHash: "hash:s3cret", Roles: []string{"bot"}},
		{ID: "no-secret"},
	}

	tests := []struct {
		name     string
		clientID string
		secret   string
		want     string
		wantErr  error
	}{
		{name: "valid", clientID: "chat-bot", secret: "s3cret", want: "token-for-chat-bot"},
		{name: "trims client id", clientID: " chat-bot ", secret: "s3cret", want: "token-for-chat-bot"},
		{name: "wrong secret", clientID: "chat-bot", secret: "nope", wantErr: domain.ErrInvalidCredentials},
		{name: "empty secret", clientID: "chat-bot", secret: "", wantErr: domain.ErrInvalidCredentials},
		{name: "unknown client", clientID: "other", secret: "s3cret", wantErr: domain.ErrInvalidCredentials},
		{name: "client without hash is ignored", clientID: "no-secret", secret: "x", wantErr: domain.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := &fakeIssuer{}
			svc := NewAuthService(clients, plainHasher{}, issuer, time.Hour)

			got, err := svc.IssueToken(context.Background(), tt.clientID, tt.secret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"bot"}, issuer.roles)
			assert.Equal(t, time.Hour, issuer.expiry)
		})
	}
}

func TestAuthService_IssueToken_IssuerError(t *testing.T) {
	clients := []domain.Client{{ID: "chat-bot", SecretHash: "hash:s3cret"}}
	svc := NewAuthService(clients, plainHasher{}, &fakeIssuer{err: errors.New("boom")}, time.Hour)

	_, err := svc.IssueToken(context.Background(), "chat-bot", "s3cret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}
