// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidUserID = errors.New("invalid user id")

// NewSlug creates a random base62 slug for a list. 8 bytes of entropy
// keeps the URL short while making collisions negligible at this scale.
func NewSlug() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate slug: %w", err)
	}
	return base62Encode(b), nil
}

// NewItemID creates a unique identifier for an item.
func NewItemID() string {
	return uuid.NewString()
}

// ValidateUserID checks that a self-asserted user id is a canonical
// UUID (8-4-4-4-12, lowercase hex accepted case-insensitively). The id
// is unauthenticated - this guards the scores-map key format, nothing
// more.
func ValidateUserID(id string) error {
	if len(id) != 36 {
		return ErrInvalidUserID
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidUserID
	}
	return nil
}

// base62Encode converts bytes to base62 (0-9, a-z, A-Z)
// This creates URL-friendly slugs without special characters
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Convert bytes to a big integer
	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	// Convert to base62
	result := make([]byte, 0, 11) // max length for uint64
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	// Reverse the string
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}
