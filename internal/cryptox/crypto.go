// Package cryptox hashes user passwords with bcrypt so that plaintext
// secrets never reach the store.
package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// NormalizeCost clamps cost into the range accepted by bcrypt. Zero selects
// bcrypt.DefaultCost.
func NormalizeCost(cost int) int {
	switch {
	case cost == 0:
		return bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		return bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		return bcrypt.MaxCost
	}
	return cost
}

// HashPassword returns the bcrypt hash of password at the given cost.
//
// bcrypt only looks at the first 72 bytes; longer inputs are rejected by the
// library and surface here as an error.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), NormalizeCost(cost))
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
