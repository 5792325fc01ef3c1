// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "time"

// KV is the durable key-value collaborator. Implementations must honor
// the TTL on Put: expired records read as absent. Single-key writes are
// assumed atomic (last write wins); no conditional-write primitive is
// assumed or required.
type KV interface {
	// Get returns the value for key, or ok=false when the key is
	// absent or expired.
	Get(key string) (value []byte, ok bool, err error)

	// Put stores value under key with the given time-to-live,
	// replacing any existing record.
	Put(key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
