// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP endpoints.

# List Management

ListHandler covers the document lifecycle:

	POST   /lists              create → {slug}
	GET    /lists/{slug}       read (X-List-Version → 304)
	PUT    /lists/{slug}       merge update
	DELETE /lists/{slug}       delete (idempotent)

Handlers are thin: they bind JSON, pull the acting user from the
X-User-ID header, and delegate to the merge engine. The engine's typed
failure taxonomy maps onto HTTP in one place (writeMergeError):

	NotFound        404
	InvalidIdentity 400
	InvalidRequest  400
	RateLimited     429 + Retry-After header
	VersionConflict 409 {conflict: true, server: <list>}
	TooLarge        413 + sizes in KB
	Internal        500

# Export

ExportHandler serves GET /lists/{slug}/export with ?format=csv or
?format=json (default). CSV downloads carry a Content-Disposition
filename; JSON responses are export envelopes.
*/
package handlers
