// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import "testing"

func TestNewSlug(t *testing.T) {
	slug, err := NewSlug()
	if err != nil {
		t.Fatalf("NewSlug failed: %v", err)
	}
	if slug == "" {
		t.Fatal("expected non-empty slug")
	}

	// Base62 only: URL-safe without escaping
	for _, c := range slug {
		isAlnum := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !isAlnum {
			t.Errorf("slug contains non-base62 character %q", c)
		}
	}
}

func TestNewSlugUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		slug, err := NewSlug()
		if err != nil {
			t.Fatalf("NewSlug failed: %v", err)
		}
		if seen[slug] {
			t.Fatalf("duplicate slug %q", slug)
		}
		seen[slug] = true
	}
}

func TestNewItemID(t *testing.T) {
	id := NewItemID()
	if len(id) != 36 {
		t.Errorf("expected canonical UUID length 36, got %d", len(id))
	}
	if err := ValidateUserID(id); err != nil {
		t.Errorf("generated id should validate: %v", err)
	}
}

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"canonical uuid", "11111111-1111-1111-1111-111111111111", true},
		{"random uuid", NewItemID(), true},
		{"uppercase", "11111111-1111-1111-1111-11111111111A", true},
		{"empty", "", false},
		{"too short", "1111-1111", false},
		{"no dashes", "11111111111111111111111111111111ABCD", false},
		{"not hex", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz", false},
		{"urn form rejected", "urn:uuid:11111111-1111-1111-1111-111111111111", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserID(tt.id)
			if tt.valid && err != nil {
				t.Errorf("expected %q valid, got %v", tt.id, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q invalid", tt.id)
			}
		})
	}
}

func TestBase62Encode(t *testing.T) {
	if got := base62Encode([]byte{0}); got != "0" {
		t.Errorf("expected \"0\" for zero input, got %q", got)
	}
	if got := base62Encode([]byte{62}); got != "10" {
		t.Errorf("expected \"10\" for 62, got %q", got)
	}
	if got := base62Encode([]byte{61}); got != "Z" {
		t.Errorf("expected \"Z\" for 61, got %q", got)
	}
}
