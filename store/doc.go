// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the durable key-value collaborator and the List
repository built on it.

# Key-Value Layer

The KV interface is a plain get/put/delete service with TTL support.
SQLKV implements it on database/sql and works against both backends:

  - sqlite via modernc.org/sqlite (default, cgo-free)
  - postgres via lib/pq

Schema creation:

	if err := store.CreateSchema(db); err != nil {
		log.Fatal(err)
	}

One table, one row per record:

	kv(key TEXT PRIMARY KEY, value TEXT, expires_at BIGINT)

Expired rows read as absent and are reaped lazily on access or via
ReapExpired. No conditional-write primitive is exposed - the merge
engine's version check is the conflict boundary, and the narrow
read-check-write race this leaves is an accepted limitation.

# List Repository

Lists maps slugs to serialized List documents under namespaced keys
("list:<slug>"). Every successful write refreshes the TTL, implementing
the 30-day sliding expiry from last activity:

	lists := store.NewLists(kv, 30*24*time.Hour)
	list, err := lists.Get(slug) // store.ErrNotFound when absent
*/
package store
