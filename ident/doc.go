// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates and validates the identifiers used by gutboard.

# Slugs

Slugs are the public identifiers for lists, used as both the storage
key and the URL token:

	slug, err := ident.NewSlug()

They are 8 random bytes base62-encoded (alphanumeric only), so they can
be shared in URLs without escaping. Slugs are random rather than
derived - a list has no secret admin key, anyone with the slug may edit.

# Item IDs

Items get canonical UUIDs:

	id := ident.NewItemID()

# User IDs

User identity is self-asserted and unauthenticated, but the id must be
a canonical UUID so the per-item scores maps stay well-formed:

	if err := ident.ValidateUserID(req.UserID); err != nil { ... }
*/
package ident
