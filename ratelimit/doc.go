// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ratelimit provides fixed-window rate governance and the
stateless document-size check.

# Windows

A Governor holds an in-memory map of {count, resetAt} entries keyed by
arbitrary strings:

	gov := ratelimit.NewGovernor(false)
	r := gov.CheckAndIncrement("user:abc:save:minute", 10, time.Minute)

Windows are fixed, not sliding: once a window resets the counter
restarts at zero, so a burst up to the limit is allowed immediately
after reset. Expired entries are collected by a low-probability sampled
sweep; they read as absent either way, so prompt collection is not a
correctness requirement.

Counters are process-local and mutex-guarded. No cross-instance
synchronization is attempted - under horizontal scaling each instance
counts independently, which is an accepted accuracy/cost tradeoff.

# Composite Policies

A save by a user is gated by stacked per-minute AND per-hour windows;
list creation by a per-day window; saves to one list by a per-minute
window keyed by the slug, independent of who is saving:

	if d := gov.CheckUserSave(userID, limits); d != nil { ... }
	if d := gov.CheckCreate(userID, perDay); d != nil { ... }
	if d := gov.CheckListSave(slug, perMinute); d != nil { ... }

The first failing window's message and retry time are surfaced. A
disabled Governor allows everything.

# Size Governance

CheckSize rejects serialized documents over a KB ceiling, reporting
both the measured and allowed sizes to one decimal place:

	if d := ratelimit.CheckSize(raw, cfg.MaxListKB); d != nil { ... }
*/
package ratelimit
