// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/gutboard/models"
	"github.com/danielhkuo/gutboard/testutil"
)

func TestExportListJSON(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	lh := NewListHandler(engine, cfg)
	eh := NewExportHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Exportable")

	// Seed one scored item.
	up := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Items: []models.ItemUpdate{
			{Label: testutil.Strp("Fix deploy"), G: testutil.Intp(5), U: testutil.Intp(5), T: testutil.Intp(4)},
		},
		Version: testutil.Intp(1),
		UserID:  userA,
	}, nil)
	up.SetPathValue("slug", slug)
	lh.UpdateList(httptest.NewRecorder(), up)

	req := testutil.MakeRequest("GET", "/lists/"+slug+"/export?format=json", nil,
		map[string]string{"X-User-ID": userA})
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	eh.ExportList(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var env models.ExportEnvelope
	testutil.AssertJSON(t, w, &env)
	if env.ExportedBy != userA {
		t.Errorf("Expected exportedBy %s, got %s", userA, env.ExportedBy)
	}
	if env.List == nil || len(env.List.Items) != 1 {
		t.Fatalf("Expected the full document in the envelope, got %+v", env.List)
	}
	if got := env.List.Items[0].Scores[userA]; got.Score != 100 {
		t.Errorf("Expected score 100 in exported document, got %+v", got)
	}
}

func TestExportListDefaultsToJSON(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	eh := NewExportHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Defaulted")

	req := testutil.MakeRequest("GET", "/lists/"+slug+"/export", nil, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	eh.ExportList(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var env models.ExportEnvelope
	testutil.AssertJSON(t, w, &env)
	if env.ExportedBy != models.AnonymousUser {
		t.Errorf("Expected anonymous exporter, got %s", env.ExportedBy)
	}
}

func TestExportListCSV(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	lh := NewListHandler(engine, cfg)
	eh := NewExportHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Spreadsheet")

	up := testutil.MakeRequest("PUT", "/lists/"+slug, models.UpdateListRequest{
		Items: []models.ItemUpdate{
			{Label: testutil.Strp("Fix deploy"), G: testutil.Intp(5), U: testutil.Intp(5), T: testutil.Intp(4)},
		},
		Version: testutil.Intp(1),
		UserID:  userA,
	}, nil)
	up.SetPathValue("slug", slug)
	lh.UpdateList(httptest.NewRecorder(), up)

	req := testutil.MakeRequest("GET", "/lists/"+slug+"/export?format=csv", nil,
		map[string]string{"X-User-ID": userA})
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	eh.ExportList(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Expected text/csv, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, slug) {
		t.Errorf("Expected filename with slug in Content-Disposition, got %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV body: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 row, got %d", len(records))
	}
	if records[1][0] != "Fix deploy" || records[1][4] != "100" {
		t.Errorf("Unexpected CSV row: %v", records[1])
	}
}

func TestExportListBadFormat(t *testing.T) {
	cfg := testutil.GetTestConfig()
	engine := testutil.NewTestEngine(t, cfg)
	eh := NewExportHandler(engine, cfg)
	slug := testutil.CreateTestList(t, engine, "Picky")

	req := testutil.MakeRequest("GET", "/lists/"+slug+"/export?format=xml", nil, nil)
	req.SetPathValue("slug", slug)
	w := httptest.NewRecorder()
	eh.ExportList(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestExportListNotFound(t *testing.T) {
	cfg := testutil.GetTestConfig()
	eh := NewExportHandler(testutil.NewTestEngine(t, cfg), cfg)

	req := testutil.MakeRequest("GET", "/lists/missing1/export?format=csv", nil, nil)
	req.SetPathValue("slug", "missing1")
	w := httptest.NewRecorder()
	eh.ExportList(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
