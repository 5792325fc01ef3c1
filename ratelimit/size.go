// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ratelimit

import "fmt"

// SizeDenial reports a document that exceeds the configured ceiling.
// Sizes are in KB, reported to one decimal place in Message.
type SizeDenial struct {
	Message string
	SizeKB  float64
	LimitKB float64
}

// CheckSize measures the UTF-8 byte length of a serialized document
// against a kilobyte ceiling. A document of exactly the ceiling passes;
// one byte over is rejected. Stateless - size governance needs no
// window bookkeeping.
func CheckSize(raw []byte, maxKB int) *SizeDenial {
	limit := maxKB * 1024
	if len(raw) <= limit {
		return nil
	}
	sizeKB := float64(len(raw)) / 1024
	limitKB := float64(maxKB)
	return &SizeDenial{
		Message: fmt.Sprintf("List too large: %.1f KB exceeds the %.1f KB limit", sizeKB, limitKB),
		SizeKB:  sizeKB,
		LimitKB: limitKB,
	}
}
