// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		questionID string
		salt       string
	}{
		{"standard", "q-123", "secret-salt"},
		{"empty question id", "", "salt"},
		{"empty salt", "q-456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.questionID, tt.salt)

			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			if key != GenerateAdminKey(tt.questionID, tt.salt) {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			if strings.ContainsAny(key, "+/=") {
				t.Errorf("GenerateAdminKey() is not URL-safe: %s", key)
			}

			if key == GenerateAdminKey(tt.questionID+"x", tt.salt) {
				t.Error("GenerateAdminKey() produced same key for different questions")
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	questionID := "q-1"
	validKey := GenerateAdminKey(questionID, salt)

	tests := []struct {
		name    string
		key     string
		id      string
		wantErr error
	}{
		{"valid key", validKey, questionID, nil},
		{"missing key", "", questionID, ErrMissingAdminKey},
		{"wrong key", "not-the-key", questionID, ErrInvalidAdminKey},
		{"key for other question", GenerateAdminKey("q-2", salt), questionID, ErrInvalidAdminKey},
		{"key with other salt", GenerateAdminKey(questionID, "other"), questionID, ErrInvalidAdminKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.id, tt.key, salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAdminKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateVoterToken(t *testing.T) {
	token, err := GenerateVoterToken()
	if err != nil {
		t.Fatalf("GenerateVoterToken() error = %v", err)
	}

	// 24 bytes base64 without padding = 32 chars
	if len(token) != 32 {
		t.Errorf("GenerateVoterToken() length = %d, want 32", len(token))
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("GenerateVoterToken() is not URL-safe: %s", token)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, _ := GenerateVoterToken()
		if seen[tok] {
			t.Fatal("GenerateVoterToken() produced a duplicate")
		}
		seen[tok] = true
	}
}

func TestHashIP(t *testing.T) {
	salt := "ip-salt"

	h := HashIP("192.168.1.1", salt)
	if len(h) != 16 {
		t.Errorf("HashIP() length = %d, want 16", len(h))
	}
	if h != HashIP("192.168.1.1", salt) {
		t.Error("HashIP() is not deterministic")
	}
	if h == HashIP("192.168.1.2", salt) {
		t.Error("HashIP() collided for different addresses")
	}
	if h == HashIP("192.168.1.1", "other-salt") {
		t.Error("HashIP() ignores the salt")
	}
	if HashIP("", salt) != "" {
		t.Error("HashIP() of empty address should be empty")
	}
}

func BenchmarkGenerateAdminKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateAdminKey("q-benchmark", "salt")
	}
}

func BenchmarkGenerateVoterToken(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateVoterToken()
	}
}
