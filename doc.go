// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the gutboard API server.

gutboard is a collaborative prioritization service: teams score shared
lists of items along three bounded factors (gravity, urgency, tendency),
the server merges everyone's concurrent edits with optimistic
concurrency, and per-item averages are recomputed on every save.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=gutboard.db go run main.go

Or with flags:

	go run main.go -p 3319 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DISABLE_RATE_LIMITS (-no-rate-limits): turn off quota windows (dev only)

Tuning knobs (env only) cover item/size ceilings, scale clamp bounds,
list TTL, and the rate-limit quotas; see the cliparse package.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (lists, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Document and request/response types
  - merge: The merge engine (conflict detection, per-user score merge)
  - scoring: Pure scoring arithmetic and normalization
  - ratelimit: Fixed-window quotas and the document size check
  - ident: Slug, item id, and user id handling
  - store: KV storage over sqlite/postgres with TTL expiry
  - reconcile: Conflict diffing and export re-import
  - export: CSV and JSON projections
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
