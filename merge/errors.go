// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package merge

import (
	"fmt"

	"github.com/danielhkuo/gutboard/models"
)

// Kind classifies an Error into the failure taxonomy.
type Kind int

const (
	// KindNotFound - the target list is absent (deleted, expired, or
	// never existed). Terminal; not retried.
	KindNotFound Kind = iota

	// KindInvalidIdentity - the update carried a malformed user id.
	KindInvalidIdentity

	// KindInvalidRequest - too many items or invalid scale bounds.
	KindInvalidRequest

	// KindRateLimited - a quota window rejected the request. Carries a
	// retry-after duration; back off, don't retry immediately.
	KindRateLimited

	// KindVersionConflict - the optimistic-concurrency check failed.
	// An expected collaborative-editing outcome, not an error; carries
	// the authoritative current list for reconciliation.
	KindVersionConflict

	// KindTooLarge - the resulting document exceeds the byte ceiling.
	// The stored list is untouched.
	KindTooLarge

	// KindInternal - a storage I/O failure. The caller may retry the
	// whole read-merge-write sequence from scratch.
	KindInternal
)

// Error is the merge engine's structured failure. It carries enough
// detail for the caller to take corrective action without guessing.
type Error struct {
	Kind    Kind
	Message string

	// RetryAfterSeconds is set for KindRateLimited.
	RetryAfterSeconds int

	// Server is the authoritative current list, set for
	// KindVersionConflict.
	Server *models.List

	// SizeKB/LimitKB are set for KindTooLarge.
	SizeKB  float64
	LimitKB float64

	// Err is the wrapped cause, set for KindInternal.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notFound(slug string) *Error {
	return &Error{Kind: KindNotFound, Message: "List not found: " + slug}
}

func invalidIdentity() *Error {
	return &Error{Kind: KindInvalidIdentity, Message: "userId must be a canonical UUID"}
}

func invalidRequest(msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: msg}
}

func rateLimited(msg string, retryAfter int) *Error {
	return &Error{Kind: KindRateLimited, Message: msg, RetryAfterSeconds: retryAfter}
}

func versionConflict(server *models.List) *Error {
	return &Error{
		Kind:    KindVersionConflict,
		Message: fmt.Sprintf("Version conflict: the list is at version %d", server.Version),
		Server:  server,
	}
}

func tooLarge(msg string, sizeKB, limitKB float64) *Error {
	return &Error{Kind: KindTooLarge, Message: msg, SizeKB: sizeKB, LimitKB: limitKB}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}
