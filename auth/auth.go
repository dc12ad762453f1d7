// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// Request headers carrying a caller's identity and key.
const (
	HeaderIdentity    = "X-Identity"
	HeaderIdentityKey = "X-Identity-Key"
)

var (
	ErrMissingIdentity    = errors.New("identity header required")
	ErrInvalidIdentityKey = errors.New("invalid identity key")
)

// GenerateIdentityKey creates the HMAC-based key a principal presents with
// its identity. It is deterministic, so keys are never stored.
func GenerateIdentityKey(identity, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(identity))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateIdentityKey checks if the provided key belongs to identity
func ValidateIdentityKey(identity, key, salt string) error {
	if identity == "" {
		return ErrMissingIdentity
	}
	expected := GenerateIdentityKey(identity, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidIdentityKey
	}
	return nil
}
