package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"fundvote/models"
)

var ErrInvalidToken = errors.New("invalid auth token")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateAddressToken creates an HMAC-based token proving control of an
// address. Deterministic and verifiable: only a party holding the salt can
// mint a valid token for an address, so presenting one authenticates the
// caller as that address without any per-address state on the server.
func GenerateAddressToken(addr models.Address, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(addr))
	sum := h.Sum(nil)
	// URL-safe base64 without padding for cleaner headers
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAddressToken checks that token authenticates addr.
func ValidateAddressToken(addr models.Address, token, salt string) error {
	expected := GenerateAddressToken(addr, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidToken
	}
	return nil
}
