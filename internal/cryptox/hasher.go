// Package cryptox holds the password hashers used when persisting users.
package cryptox

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext password into the form stored in the users table.
type Hasher interface {
	Hash(password string) (string, error)
}

const (
	HasherSHA512 = "sha512"
	HasherBcrypt = "bcrypt"
)

// NewHasher returns the hasher registered under name. An empty name selects
// SHA-512.
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", HasherSHA512:
		return SHA512Hasher{}, nil
	case HasherBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	}
	return nil, fmt.Errorf("unknown password hasher %q", name)
}

// SHA512Hasher is a single unsalted SHA-512 pass rendered as 128 uppercase
// hex characters. Deterministic, and therefore open to precomputed-table
// attacks; kept as the default for stored-format compatibility.
type SHA512Hasher struct{}

func (SHA512Hasher) Hash(password string) (string, error) {
	sum := sha512.Sum512([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:])), nil
}

// BcryptHasher produces salted bcrypt hashes. Digests differ between calls
// and are not readable by deployments that store SHA-512.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}
