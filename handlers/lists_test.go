// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/gutboard/models"
	"github.com/danielhkuo/gutboard/testutil"
)

const (
	userA = "11111111-1111-4111-8111-111111111111"
	userB = "22222222-2222-4222-8222-222222222222"
)

func TestCreateList(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)

	req := testutil.MakeRequest("POST", "/lists",
		models.CreateListRequest{Title: "Roadmap candidates"}, nil)
	w := httptest.NewRecorder()
	h.CreateList(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateListResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Slug == "" {
		t.Error("Expected a non-empty slug")
	}
}

func TestCreateListInvalidJSON(t *testing.T) {
	cfg := testutil.GetTestConfig()
	h := NewListHandler(testutil.NewTestEngine(t, cfg), cfg)

	req := httptest.NewRequest("POST", "/lists", nil)
	w := httptest.NewRecorder()
	h.CreateList(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetList(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Read me")

	req := testutil.MakeRequest("GET", "/lists/"+slug, nil, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	h.GetList(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.List
	testutil.AssertJSON(t, w, &list)
	if list.Slug != slug {
		t.Errorf("Expected slug %s, got %s", slug, list.Slug)
	}
	if list.Title != "Read me" {
		t.Errorf("Expected title 'Read me', got %q", list.Title)
	}
	if list.Version != 1 {
		t.Errorf("Expected version 1, got %d", list.Version)
	}
}

func TestGetListNotFound(t *testing.T) {
	cfg := testutil.GetTestConfig()
	h := NewListHandler(testutil.NewTestEngine(t, cfg), cfg)

	req := testutil.MakeRequest("GET", "/lists/missing1", nil, nil)
	req.SetPathValue("slug", "missing1")
	w := httptest.NewRecorder()
	h.GetList(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetListNotModified(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Cached")

	// Matching version short-circuits.
	req := testutil.MakeRequest("GET", "/lists/"+slug, nil,
		map[string]string{"X-List-Version": "1"})
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	h.GetList(w, req)

	testutil.AssertStatus(t, w, http.StatusNotModified)
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body on 304, got %q", w.Body.String())
	}

	// A stale version gets the full document.
	req = testutil.MakeRequest("GET", "/lists/"+slug, nil,
		map[string]string{"X-List-Version": "0"})
	req.SetPathValue("slug", slug)
	w = httptest.NewRecorder()
	h.GetList(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	// A non-numeric version is ignored.
	req = testutil.MakeRequest("GET", "/lists/"+slug, nil,
		map[string]string{"X-List-Version": "abc"})
	req.SetPathValue("slug", slug)
	w = httptest.NewRecorder()
	h.GetList(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestUpdateList(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Mutable")

	req := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Items: []models.ItemUpdate{
			{Label: testutil.Strp("Ship it"), G: testutil.Intp(5), U: testutil.Intp(4), T: testutil.Intp(3)},
		},
		Version: testutil.Intp(1),
		UserID:  userA,
	}, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	h.UpdateList(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.List
	testutil.AssertJSON(t, w, &list)
	if list.Version != 2 {
		t.Errorf("Expected version 2, got %d", list.Version)
	}
	if len(list.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(list.Items))
	}
	if got := list.Items[0].Scores[userA]; got.Score != 60 {
		t.Errorf("Expected score 60, got %+v", got)
	}
}

func TestUpdateListUserIDFromHeader(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Headerful")

	req := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Items: []models.ItemUpdate{
			{Label: testutil.Strp("Scored"), G: testutil.Intp(2), U: testutil.Intp(2), T: testutil.Intp(2)},
		},
		Version: testutil.Intp(1),
	}, map[string]string{"X-User-ID": userB})
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	h.UpdateList(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.List
	testutil.AssertJSON(t, w, &list)
	if _, ok := list.Items[0].Scores[userB]; !ok {
		t.Errorf("Expected header identity to be used, scores: %v", list.Items[0].Scores)
	}
}

func TestUpdateListVersionConflict(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Contested")

	// Bump to version 2 first.
	first := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Title: testutil.Strp("Winner"), Version: testutil.Intp(1),
	}, nil)
	first.SetPathValue("slug", slug)
	h.UpdateList(httptest.NewRecorder(), first)

	// Stale write collides.
	req := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Title: testutil.Strp("Loser"), Version: testutil.Intp(1),
	}, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	h.UpdateList(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)

	var resp models.ConflictResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Conflict {
		t.Error("Expected conflict flag")
	}
	if resp.Server == nil || resp.Server.Version != 2 {
		t.Errorf("Expected server document at version 2, got %+v", resp.Server)
	}
	if resp.Server.Title != "Winner" {
		t.Errorf("Expected server title Winner, got %q", resp.Server.Title)
	}
}

func TestUpdateListInvalidIdentity(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Strict")

	req := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Title:  testutil.Strp("nope"),
		UserID: "definitely-not-a-uuid",
	}, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	h.UpdateList(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestUpdateListTooLarge(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.MaxListKB = 1
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Tiny ceiling")

	items := make([]models.ItemUpdate, 20)
	for i := range items {
		items[i] = models.ItemUpdate{Label: testutil.Strp("padding padding padding padding padding padding")}
	}
	req := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Items: items, Version: testutil.Intp(1), UserID: userA,
	}, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	h.UpdateList(w, req)

	testutil.AssertStatus(t, w, http.StatusRequestEntityTooLarge)

	var resp models.TooLargeResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.LimitKB != 1.0 {
		t.Errorf("Expected limitKb 1.0, got %v", resp.LimitKB)
	}
	if resp.SizeKB <= resp.LimitKB {
		t.Errorf("Expected sizeKb above the limit, got %v", resp.SizeKB)
	}
}

func TestUpdateListRateLimited(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.DisableRateLimits = false
	cfg.SaveLimitPerMinute = 1
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Throttled")

	first := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Title: testutil.Strp("once"), Version: testutil.Intp(1), UserID: userA,
	}, nil)
	first.SetPathValue("slug", slug)
	h.UpdateList(httptest.NewRecorder(), first)

	req := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Title: testutil.Strp("twice"), Version: testutil.Intp(2), UserID: userA,
	}, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	h.UpdateList(w, req)

	testutil.AssertStatus(t, w, http.StatusTooManyRequests)
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected a Retry-After header")
	}

	var resp models.RateLimitResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.RetryAfterSeconds < 1 {
		t.Errorf("Expected positive retryAfterSeconds, got %d", resp.RetryAfterSeconds)
	}
}

func TestDeleteList(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	h := NewListHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Doomed")

	req := testutil.MakeRequest("DELETE", "/lists/"+slug, nil, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	h.DeleteList(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	// Deleting again still succeeds.
	req = testutil.MakeRequest("DELETE", "/lists/"+slug, nil, nil)
	req.SetPathValue("slug", slug)
	w = httptest.NewRecorder()
	h.DeleteList(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)

	// And the list is gone.
	get := testutil.MakeRequest("GET", "/lists/"+slug, nil, nil)
	get.SetPathValue("slug", slug)
	w = httptest.NewRecorder()
	h.GetList(w, get)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
