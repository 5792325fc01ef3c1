// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ratelimit

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// sweepOneIn is the sampling rate for the opportunistic GC of expired
// window entries. Correctness never depends on the sweep - expired
// entries read as absent either way.
const sweepOneIn = 50

// Result reports the outcome of a single window check.
type Result struct {
	Allowed           bool
	Current           int
	RetryAfterSeconds int
}

// Denial describes the first failing window of a composite policy.
// A nil *Denial means every window allowed the action.
type Denial struct {
	Message           string
	RetryAfterSeconds int
}

type entry struct {
	count   int
	resetAt time.Time
}

// Governor is a fixed-window rate counter keyed by arbitrary strings.
// Windows do not slide: when a window expires the counter restarts at
// zero, so a burst up to the limit is permitted immediately after reset.
// Counters are process-local and lost on restart; rate limiting here is
// advisory, not a correctness guarantee.
type Governor struct {
	mu       sync.Mutex
	entries  map[string]entry
	disabled bool

	now func() time.Time
}

// NewGovernor creates a Governor. When disabled, every check allows
// unconditionally.
func NewGovernor(disabled bool) *Governor {
	return &Governor{
		entries:  make(map[string]entry),
		disabled: disabled,
		now:      time.Now,
	}
}

// CheckAndIncrement records one action against key and reports whether
// it fits inside the window. The first call for a fresh or expired key
// starts a new window. On rejection RetryAfterSeconds is the remaining
// window time rounded up to whole seconds.
func (g *Governor) CheckAndIncrement(key string, limit int, window time.Duration) Result {
	if g.disabled {
		return Result{Allowed: true}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if rand.IntN(sweepOneIn) == 0 {
		g.sweepLocked(now)
	}

	e, ok := g.entries[key]
	if !ok || !now.Before(e.resetAt) {
		g.entries[key] = entry{count: 1, resetAt: now.Add(window)}
		return Result{Allowed: true, Current: 1}
	}

	if e.count < limit {
		e.count++
		g.entries[key] = e
		return Result{Allowed: true, Current: e.count}
	}

	retry := int(math.Ceil(e.resetAt.Sub(now).Seconds()))
	if retry < 1 {
		retry = 1
	}
	return Result{Allowed: false, Current: e.count, RetryAfterSeconds: retry}
}

// sweepLocked drops expired entries. Caller holds g.mu.
func (g *Governor) sweepLocked(now time.Time) {
	for key, e := range g.entries {
		if !now.Before(e.resetAt) {
			delete(g.entries, key)
		}
	}
}

// SaveLimits gates a save action by a user: both the per-minute and the
// per-hour window must pass.
type SaveLimits struct {
	PerMinute int
	PerHour   int
}

// CheckUserSave runs the stacked per-user save windows. The first
// failing window's message and retry time are surfaced.
func (g *Governor) CheckUserSave(userID string, limits SaveLimits) *Denial {
	r := g.CheckAndIncrement(fmt.Sprintf("user:%s:save:minute", userID), limits.PerMinute, time.Minute)
	if !r.Allowed {
		return &Denial{
			Message:           "Too many saves, please slow down",
			RetryAfterSeconds: r.RetryAfterSeconds,
		}
	}
	r = g.CheckAndIncrement(fmt.Sprintf("user:%s:save:hour", userID), limits.PerHour, time.Hour)
	if !r.Allowed {
		return &Denial{
			Message:           "Hourly save limit reached",
			RetryAfterSeconds: r.RetryAfterSeconds,
		}
	}
	return nil
}

// CheckCreate gates list creation by a per-day window. Anonymous
// callers share one bucket.
func (g *Governor) CheckCreate(userID string, perDay int) *Denial {
	r := g.CheckAndIncrement(fmt.Sprintf("user:%s:create:day", userID), perDay, 24*time.Hour)
	if !r.Allowed {
		return &Denial{
			Message:           "Daily list creation limit reached",
			RetryAfterSeconds: r.RetryAfterSeconds,
		}
	}
	return nil
}

// CheckListSave gates saves to one list regardless of which user is
// saving.
func (g *Governor) CheckListSave(slug string, perMinute int) *Denial {
	r := g.CheckAndIncrement(fmt.Sprintf("list:%s:save:minute", slug), perMinute, time.Minute)
	if !r.Allowed {
		return &Denial{
			Message:           "This list is being saved too frequently",
			RetryAfterSeconds: r.RetryAfterSeconds,
		}
	}
	return nil
}
