// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateIdentityKey(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		salt     string
	}{
		{"standard", "alice", "secret-salt"},
		{"empty identity", "", "salt"},
		{"empty salt", "bob", ""},
		{"address-like", "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", "salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateIdentityKey(tt.identity, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateIdentityKey() returned empty string")
			}

			// Should be URL-safe (no padding)
			if strings.Contains(key, "=") {
				t.Error("GenerateIdentityKey() contains padding characters")
			}

			// Should be deterministic
			key2 := GenerateIdentityKey(tt.identity, tt.salt)
			if key != key2 {
				t.Error("GenerateIdentityKey() is not deterministic")
			}

			// Different inputs should produce different keys
			if tt.identity != "" && tt.salt != "" {
				differentKey := GenerateIdentityKey(tt.identity+"x", tt.salt)
				if key == differentKey {
					t.Error("GenerateIdentityKey() produced same key for different identities")
				}
			}
		})
	}

	// Different salts should produce different keys
	if GenerateIdentityKey("alice", "salt1") == GenerateIdentityKey("alice", "salt2") {
		t.Error("GenerateIdentityKey() produced same key for different salts")
	}
}

func TestValidateIdentityKey(t *testing.T) {
	salt := "test-salt"
	key := GenerateIdentityKey("alice", salt)

	tests := []struct {
		name     string
		identity string
		key      string
		salt     string
		wantErr  error
	}{
		{"valid key", "alice", key, salt, nil},
		{"wrong identity", "bob", key, salt, ErrInvalidIdentityKey},
		{"wrong salt", "alice", key, "other-salt", ErrInvalidIdentityKey},
		{"empty key", "alice", "", salt, ErrInvalidIdentityKey},
		{"tampered key", "alice", key[:len(key)-1] + "!", salt, ErrInvalidIdentityKey},
		{"missing identity", "", key, salt, ErrMissingIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentityKey(tt.identity, tt.key, tt.salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateIdentityKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func BenchmarkGenerateIdentityKey(b *testing.B) {
	identity := "test-voter-123"
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateIdentityKey(identity, salt)
	}
}
