// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/gutboard/cliparse"
	"github.com/danielhkuo/gutboard/merge"
	"github.com/danielhkuo/gutboard/models"
	"github.com/danielhkuo/gutboard/ratelimit"
	"github.com/danielhkuo/gutboard/store"
)

// MemKV is an in-memory KV with TTL for tests.
type MemKV struct {
	mu   sync.Mutex
	data map[string]memEntry

	// Now is overridable so tests can step time
	Now func() time.Time
}

type memEntry struct {
	value     []byte
	expiresAt time.Time
}

func NewMemKV() *MemKV {
	return &MemKV{
		data: map[string]memEntry{},
		Now:  time.Now,
	}
}

func (m *MemKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.data[key]
	if !ok || !m.Now().Before(e.expiresAt) {
		return nil, false, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

func (m *MemKV) Put(key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = memEntry{value: v, expiresAt: m.Now().Add(ttl)}
	return nil
}

func (m *MemKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// GetTestConfig returns a standard test configuration. Rate limits are
// disabled by default; tests exercising governance construct their own
// Governor.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                   3319,
		DatabaseURL:            "file::memory:",
		DatabaseType:           "sqlite",
		MaxItems:               500,
		MaxListKB:              64,
		ScaleMinLimit:          5,
		ScaleMaxLimit:          10,
		ListTTLDays:            30,
		DisableRateLimits:      true,
		SaveLimitPerMinute:     10,
		SaveLimitPerHour:       100,
		CreateLimitPerDay:      20,
		ListSaveLimitPerMinute: 30,
	}
}

// NewTestEngine builds a merge engine backed by an in-memory KV.
func NewTestEngine(t *testing.T, cfg cliparse.Config) *merge.Engine {
	t.Helper()
	kv := NewMemKV()
	lists := store.NewLists(kv, time.Duration(cfg.ListTTLDays)*24*time.Hour)
	gov := ratelimit.NewGovernor(cfg.DisableRateLimits)
	return merge.NewEngine(lists, gov, cfg)
}

// CreateTestList creates a list through the engine and returns its slug.
func CreateTestList(t *testing.T, engine *merge.Engine, title string) string {
	t.Helper()
	list, merr := engine.Create(models.CreateListRequest{Title: title}, models.AnonymousUser)
	if merr != nil {
		t.Fatalf("Failed to create test list: %v", merr)
	}
	return list.Slug
}

// Intp returns a pointer to v, for building sparse update payloads.
func Intp(v int) *int { return &v }

// Strp returns a pointer to s.
func Strp(s string) *string { return &s }

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
