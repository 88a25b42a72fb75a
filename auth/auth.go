// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrNoAdminPassword = errors.New("admin password not configured")
)

// ValidateAdminKey checks the key presented by a client against the
// admin password. Both are hashed first so the comparison takes the same
// time whatever their lengths.
func ValidateAdminKey(provided, expected string) error {
	if expected == "" {
		return ErrNoAdminPassword
	}
	if provided == "" {
		return ErrInvalidAdminKey
	}

	p := sha256.Sum256([]byte(provided))
	e := sha256.Sum256([]byte(expected))
	if !hmac.Equal(p[:], e[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateSessionToken creates a random secure token for a browser session.
// A voter resubmitting with the same token replaces their earlier ballot.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
