package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"cinemashowings/internal/domain"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a SecretHasher for API client secrets backed by bcrypt.
// A cost of zero uses bcrypt.DefaultCost.
func NewBcryptHasher(cost int) domain.SecretHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
