// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package merge

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/gutboard/cliparse"
	"github.com/danielhkuo/gutboard/ident"
	"github.com/danielhkuo/gutboard/models"
	"github.com/danielhkuo/gutboard/ratelimit"
	"github.com/danielhkuo/gutboard/scoring"
	"github.com/danielhkuo/gutboard/store"
)

// Engine owns every mutation of a List. Each call is one short-lived
// unit of work: read, validate, govern, detect conflict, merge,
// size-check, persist - a strict sequence with a defined failure exit
// at every step. Concurrency across requests is resolved purely by the
// version check; there is no per-list lock.
type Engine struct {
	lists *store.Lists
	gov   *ratelimit.Governor
	cfg   cliparse.Config

	now func() time.Time
}

func NewEngine(lists *store.Lists, gov *ratelimit.Governor, cfg cliparse.Config) *Engine {
	return &Engine{lists: lists, gov: gov, cfg: cfg, now: time.Now}
}

// Create builds a fresh list at version 1 with no items. actingUser is
// the out-of-band identity used for creation quota only; callers pass
// models.AnonymousUser when no id was supplied.
func (e *Engine) Create(req models.CreateListRequest, actingUser string) (*models.List, *Error) {
	if actingUser == "" {
		actingUser = models.AnonymousUser
	}
	if d := e.gov.CheckCreate(actingUser, e.cfg.CreateLimitPerDay); d != nil {
		return nil, rateLimited(d.Message, d.RetryAfterSeconds)
	}

	slug, err := ident.NewSlug()
	if err != nil {
		return nil, internal("Failed to create list", err)
	}

	list := &models.List{
		Slug:      slug,
		Title:     scoring.SanitizeTitle(req.Title),
		Items:     []models.Item{},
		Scale:     scoring.NormalizeScale(req.Scale, e.cfg.ScaleMinLimit, e.cfg.ScaleMaxLimit),
		Version:   1,
		UpdatedAt: e.now(),
	}

	if err := e.lists.Put(list); err != nil {
		return nil, internal("Failed to store list", err)
	}
	return list, nil
}

// Get reads the current document for slug.
func (e *Engine) Get(slug string) (*models.List, *Error) {
	list, err := e.lists.Get(slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound(slug)
	}
	if err != nil {
		return nil, internal("Failed to read list", err)
	}
	return list, nil
}

// Delete removes the list. Idempotent: deleting an absent list
// succeeds.
func (e *Engine) Delete(slug string) *Error {
	if err := e.lists.Delete(slug); err != nil {
		return internal("Failed to delete list", err)
	}
	return nil
}

// Update applies one incoming partial update to the stored list. On
// success the returned list's version is exactly oldVersion+1 and every
// other user's contributions are preserved. The update is deliberately
// not idempotent: replaying it after success trips the version check.
func (e *Engine) Update(slug string, req models.UpdateListRequest) (*models.List, *Error) {
	// Step 1: read
	cur, err := e.lists.Get(slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound(slug)
	}
	if err != nil {
		return nil, internal("Failed to read list", err)
	}

	// Step 2: identity validation
	if req.UserID != "" {
		if err := ident.ValidateUserID(req.UserID); err != nil {
			return nil, invalidIdentity()
		}
	}

	// Step 3: rate governance. The user windows and the list window
	// must all pass; the first failing window is surfaced.
	if req.UserID != "" {
		limits := ratelimit.SaveLimits{
			PerMinute: e.cfg.SaveLimitPerMinute,
			PerHour:   e.cfg.SaveLimitPerHour,
		}
		if d := e.gov.CheckUserSave(req.UserID, limits); d != nil {
			return nil, rateLimited(d.Message, d.RetryAfterSeconds)
		}
	}
	if d := e.gov.CheckListSave(slug, e.cfg.ListSaveLimitPerMinute); d != nil {
		return nil, rateLimited(d.Message, d.RetryAfterSeconds)
	}

	// Step 4: shape validation
	if len(req.Items) > e.cfg.MaxItems {
		return nil, invalidRequest(fmt.Sprintf("Too many items: %d exceeds the maximum of %d", len(req.Items), e.cfg.MaxItems))
	}
	if req.Scale != nil && req.Scale.Min != nil && req.Scale.Max != nil && *req.Scale.Min >= *req.Scale.Max {
		return nil, invalidRequest("Invalid scale: min must be less than max")
	}

	// Step 5: optimistic-concurrency check. When a version is supplied
	// a blind overwrite is never accepted; when absent the update
	// applies against whatever is current (title-only edits).
	if req.Version != nil && *req.Version != cur.Version {
		return nil, versionConflict(cur)
	}

	// Step 6: merge
	next := e.merge(cur, req)

	// Step 7: size governance before any write
	next.Version = cur.Version + 1
	next.UpdatedAt = e.now()
	raw, err := json.Marshal(next)
	if err != nil {
		return nil, internal("Failed to encode list", err)
	}
	if d := ratelimit.CheckSize(raw, e.cfg.MaxListKB); d != nil {
		return nil, tooLarge(d.Message, d.SizeKB, d.LimitKB)
	}

	// Step 8: persist the exact bytes that passed the size check,
	// refreshing the sliding TTL
	if err := e.lists.PutRaw(slug, raw); err != nil {
		return nil, internal("Failed to store list", err)
	}
	return next, nil
}

// merge produces the next document without mutating the stored one.
func (e *Engine) merge(cur *models.List, req models.UpdateListRequest) *models.List {
	next := *cur
	if req.Title != nil {
		next.Title = scoring.SanitizeTitle(*req.Title)
	}
	if req.Scale != nil {
		next.Scale = scoring.NormalizeScale(req.Scale, e.cfg.ScaleMinLimit, e.cfg.ScaleMaxLimit)
	}

	if req.Items == nil {
		// Scale-only or title-only update
		return &next
	}

	if req.UserID == "" {
		// Full replacement: re-normalize each incoming item. The
		// scores maps ride along verbatim, so nothing is lost.
		items := make([]models.Item, 0, len(req.Items))
		for _, iu := range req.Items {
			items = append(items, scoring.NormalizeItem(models.Item{
				ID:     iu.ID,
				Label:  strDeref(iu.Label),
				Notes:  strDeref(iu.Notes),
				Scores: iu.Scores,
			}))
		}
		next.Items = items
		return &next
	}

	next.Items = mergeUserItems(cur.Items, req.Items, req.UserID, next.Scale)
	return &next
}

// mergeUserItems performs the non-destructive score merge for one
// acting user. A count mismatch between the incoming and stored item
// sets means an add or delete happened client-side; reconcile by id
// with the incoming order winning. Otherwise the stored order holds and
// incoming rows are pure edits.
func mergeUserItems(existing []models.Item, incoming []models.ItemUpdate, userID string, scale models.Scale) []models.Item {
	norm := make([]models.Item, len(existing))
	for i, it := range existing {
		norm[i] = copyItem(it)
	}

	byID := make(map[string]*models.Item, len(norm))
	for i := range norm {
		byID[norm[i].ID] = &norm[i]
	}

	if len(incoming) == len(existing) {
		for _, iu := range incoming {
			it, ok := byID[iu.ID]
			if !ok {
				continue
			}
			applyText(it, iu)
			applyUserScore(it, iu, userID, scale)
		}
		return norm
	}

	// Structural change: items in both keep their scores and adopt new
	// text, incoming-only items are added fresh, existing-only items
	// are dropped.
	out := make([]models.Item, 0, len(incoming))
	for _, iu := range incoming {
		if ex, ok := byID[iu.ID]; ok {
			it := *ex
			applyText(&it, iu)
			applyUserScore(&it, iu, userID, scale)
			out = append(out, it)
			continue
		}
		it := scoring.NormalizeItem(models.Item{
			ID:    iu.ID,
			Label: strDeref(iu.Label),
			Notes: strDeref(iu.Notes),
		})
		applyUserScore(&it, iu, userID, scale)
		out = append(out, it)
	}
	return out
}

// applyText applies label/notes edits; a user can edit text without
// scoring.
func applyText(it *models.Item, iu models.ItemUpdate) {
	if iu.Label != nil {
		it.Label = scoring.SanitizeLabel(*iu.Label)
	}
	if iu.Notes != nil {
		it.Notes = scoring.SanitizeNotes(*iu.Notes)
	}
}

// applyUserScore upserts the acting user's normalized score when a
// complete (g,u,t) triple was supplied, leaving every other user's
// entry untouched, and recomputes the item's average.
func applyUserScore(it *models.Item, iu models.ItemUpdate, userID string, scale models.Scale) {
	if iu.G != nil && iu.U != nil && iu.T != nil {
		if it.Scores == nil {
			it.Scores = make(map[string]models.UserScore, 1)
		}
		it.Scores[userID] = scoring.NormalizeUserScore(iu.G, iu.U, iu.T, scale)
	}
	it.AvgScore = scoring.AverageScores(it.Scores)
}

// copyItem re-normalizes an item with its own scores map so merge
// writes never alias the snapshot returned on version conflicts.
func copyItem(it models.Item) models.Item {
	out := scoring.NormalizeItem(it)
	if it.Scores != nil {
		scores := make(map[string]models.UserScore, len(it.Scores))
		for k, v := range it.Scores {
			scores[k] = v
		}
		out.Scores = scores
		out.AvgScore = scoring.AverageScores(scores)
	}
	return out
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
