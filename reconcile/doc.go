// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reconcile helps a client recover from a version conflict and
re-import exported documents.

# Diffing

When a save is rejected with the authoritative server document, Diff
compares it against the client's stale copy and returns an ordered
change list: title first, then modified items, additions, deletions.
Summary renders the result as a single human-readable line.

# Importing

FromCSV and FromEnvelope turn previously exported documents back into
update requests. CSV rows match the current list by label and carry
only the importing user's scores; a JSON envelope is a full replacement
carrying every user's scores.
*/
package reconcile
