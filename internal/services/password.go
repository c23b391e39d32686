package services

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCodec turns a password into its stored form and checks a login
// attempt against it.
type PasswordCodec interface {
	Hash(password string) (string, error)
	Verify(stored, given string) bool
}

// PlainCodec stores passwords as given and compares them verbatim.
type PlainCodec struct{}

func (PlainCodec) Hash(password string) (string, error) {
	return password, nil
}

func (PlainCodec) Verify(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// BcryptCodec stores bcrypt hashes. Rows saved before the switch still hold
// plain text, so a stored value that is not a bcrypt hash is compared
// verbatim.
type BcryptCodec struct {
	Cost int
}

func (c BcryptCodec) Hash(password string) (string, error) {
	cost := c.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptCodec) Verify(stored, given string) bool {
	if !strings.HasPrefix(stored, "$2") {
		return PlainCodec{}.Verify(stored, given)
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}

// CodecFor returns the codec for a PASSWORD_MODE value.
func CodecFor(mode string) PasswordCodec {
	if strings.EqualFold(mode, "bcrypt") {
		return BcryptCodec{}
	}
	return PlainCodec{}
}
