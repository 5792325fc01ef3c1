// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateListRequest: title, scale (both optional)
  - UpdateListRequest: title, items, scale, version, userId (all optional)
  - ItemUpdate: union shape for one item inside an update
  - ScalePatch: partial {min, max}

ItemUpdate serves two request shapes. With a userId on the request it is
a sparse per-user edit carrying g/u/t and text fields; without one it is
a full item replacement carrying a complete scores map.

# Response Types

  - CreateListResponse: slug
  - ConflictResponse: conflict flag plus the authoritative server list
  - RateLimitResponse: error, message, retryAfterSeconds
  - TooLargeResponse: measured and allowed sizes in KB
  - ExportEnvelope: exportedAt, exportedBy, list
  - ErrorResponse: error, message

# Domain Types

  - List: the shared prioritization document (slug, items, scale,
    version, updatedAt)
  - Item: one prioritized row with per-user scores and a derived average
  - UserScore: one user's g/u/t factors and their product
  - AverageScore: per-factor means rounded to one decimal, plus count
  - Scale: {min, max} bounds for all factors on a list

# Constants

System bounds:

	DefaultScaleMin = 1
	DefaultScaleMax = 5
	MaxTitleLen     = 200
	MaxLabelLen     = 200
	MaxNotesLen     = 1024

Sentinels:

	UntitledLabel = "Untitled Item"
	AnonymousUser = "anonymous"
*/
package models
