// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// System-wide bounds and defaults
const (
	DefaultScaleMin = 1
	DefaultScaleMax = 5

	MaxTitleLen = 200
	MaxLabelLen = 200
	MaxNotesLen = 1024

	UntitledLabel = "Untitled Item"

	// AnonymousUser is the shared quota identity for callers that
	// don't send an X-User-ID header.
	AnonymousUser = "anonymous"
)

// Request types

type CreateListRequest struct {
	Title string      `json:"title,omitempty"`
	Scale *ScalePatch `json:"scale,omitempty"`
}

// ScalePatch is a partial scale supplied by the client. Missing fields
// fall back to the system defaults during normalization.
type ScalePatch struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// ItemUpdate is the union shape for one item inside an update request.
// When the request carries a userId it is read as a sparse per-user edit
// (label/notes/g/u/t); without a userId it is read as a full item whose
// scores map is preserved verbatim.
type ItemUpdate struct {
	ID    string  `json:"id,omitempty"`
	Label *string `json:"label,omitempty"`
	Notes *string `json:"notes,omitempty"`

	// Per-user scoring fields (sparse shape)
	G *int `json:"g,omitempty"`
	U *int `json:"u,omitempty"`
	T *int `json:"t,omitempty"`

	// Full item shape
	Scores map[string]UserScore `json:"scores,omitempty"`
}

type UpdateListRequest struct {
	Title   *string      `json:"title,omitempty"`
	Items   []ItemUpdate `json:"items,omitempty"`
	Scale   *ScalePatch  `json:"scale,omitempty"`
	Version *int         `json:"version,omitempty"`
	UserID  string       `json:"userId,omitempty"`
}

// Response types

type CreateListResponse struct {
	Slug string `json:"slug"`
}

// ConflictResponse is returned with a 409 when the submitted version
// doesn't match the stored one. It carries the authoritative document
// so the caller can reconcile without re-reading.
type ConflictResponse struct {
	Conflict bool  `json:"conflict"`
	Server   *List `json:"server"`
}

type RateLimitResponse struct {
	Error             string `json:"error"`
	Message           string `json:"message"`
	RetryAfterSeconds int    `json:"retryAfterSeconds"`
}

type TooLargeResponse struct {
	Error   string  `json:"error"`
	Message string  `json:"message"`
	SizeKB  float64 `json:"sizeKB"`
	LimitKB float64 `json:"limitKB"`
}

// ExportEnvelope wraps a full list document for JSON export.
type ExportEnvelope struct {
	ExportedAt time.Time `json:"exportedAt"`
	ExportedBy string    `json:"exportedBy,omitempty"`
	List       *List     `json:"list"`
}

// Error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Scale bounds every score factor on a list. Invariant: Min < Max.
type Scale struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// UserScore is one user's assessment of one item. Score is always
// recomputed server-side as G*U*T; client-supplied values are ignored.
type UserScore struct {
	G     int `json:"g"`
	U     int `json:"u"`
	T     int `json:"t"`
	Score int `json:"score"`
}

// AverageScore aggregates all contributing users' scores for an item.
// Fields are arithmetic means rounded to one decimal place.
type AverageScore struct {
	G     float64 `json:"g"`
	U     float64 `json:"u"`
	T     float64 `json:"t"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

type Item struct {
	ID     string               `json:"id"`
	Label  string               `json:"label"`
	Notes  string               `json:"notes,omitempty"`
	Scores map[string]UserScore `json:"scores,omitempty"`

	// AvgScore is derived; present only when Scores is non-empty.
	// Clients suppress it below 2 contributors - the server always
	// computes it.
	AvgScore *AverageScore `json:"avgScore,omitempty"`
}

// List is the root aggregate: a shared prioritization document
// identified by its slug. Version is the optimistic-concurrency token,
// incremented by exactly 1 on every successful mutation.
type List struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Items     []Item    `json:"items"`
	Scale     Scale     `json:"scale"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}
