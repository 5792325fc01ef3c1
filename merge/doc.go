// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package merge is the collaborative merge engine - the server-authoritative
reconciliation of concurrent per-user updates to a shared list.

# Update Protocol

Engine.Update runs a strict sequence for each request:

	Read → Validate identity → Govern → Validate shape →
	Detect conflict → Merge → Size check → Persist

Every step has a defined failure exit, classified by Kind:

	KindNotFound        404  list absent
	KindInvalidIdentity 400  malformed userId
	KindInvalidRequest  400  too many items / bad scale
	KindRateLimited     429  quota window rejected (retryAfterSeconds)
	KindVersionConflict 409  stale version (carries the server list)
	KindTooLarge        413  document over the KB ceiling
	KindInternal        500  storage I/O failure

# Concurrency

No per-list lock exists. Concurrent updates to one list race freely and
are resolved by optimistic concurrency: an update carrying a version
that doesn't match the stored one is rejected with the authoritative
document, and the loser re-reads and retries. When no version is
supplied the update applies unconditionally (title-only edits). The
storage layer offers no compare-and-swap, so a narrow read-check-write
race remains between the version check and the put - an accepted
limitation of the design.

Successful updates are deliberately not idempotent: replaying one trips
the version check. That is the collision detection working, not a bug.

# Merge Semantics

An update without items edits title/scale only. With items and no
userId it is a wholesale replacement (scores maps preserved verbatim by
normalization). With a userId it is a non-destructive score merge: a
count mismatch against the stored items is a structural change
reconciled by id; the acting user's normalized (g,u,t) is upserted
under their id, all other users' entries are untouched, and each
touched item's average is recomputed.
*/
package merge
