// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

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
)

var (
	ErrMissingAdminKey = errors.New("missing admin key")
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// voterTokenBytes is the entropy of a voter token (192 bits).
const voterTokenBytes = 24

func mac(salt, msg string) []byte {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(msg))
	return h.Sum(nil)
}

// GenerateAdminKey derives the admin capability for one question.
// It is deterministic, so nothing needs to be stored to validate it.
func GenerateAdminKey(questionID, salt string) string {
	sum := mac(salt, "question:"+questionID)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks adminKey against the question's expected key in
// constant time.
func ValidateAdminKey(questionID, adminKey, salt string) error {
	if adminKey == "" {
		return ErrMissingAdminKey
	}
	expected := GenerateAdminKey(questionID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateVoterToken creates a random secret identifying a voter.
func GenerateVoterToken() (string, error) {
	b := make([]byte, voterTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate voter token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// HashIP creates a one-way hash of a client address for the vote ledger.
// Returns the first 8 bytes of the HMAC as hex. Empty input hashes to "".
func HashIP(ip, salt string) string {
	if ip == "" {
		return ""
	}
	return hex.EncodeToString(mac(salt, ip)[:8])
}
