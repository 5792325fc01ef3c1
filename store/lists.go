// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/gutboard/models"
)

var ErrNotFound = errors.New("list not found")

const listKeyPrefix = "list:"

// Lists is the repository for List aggregates on top of the KV
// collaborator. Every write refreshes the TTL, giving lists a sliding
// expiry from last activity.
type Lists struct {
	kv  KV
	ttl time.Duration
}

func NewLists(kv KV, ttl time.Duration) *Lists {
	return &Lists{kv: kv, ttl: ttl}
}

func listKey(slug string) string {
	return listKeyPrefix + slug
}

// Get reads the current document for slug. Returns ErrNotFound when
// the list is absent, expired, or never existed.
func (s *Lists) Get(slug string) (*models.List, error) {
	raw, ok, err := s.kv.Get(listKey(slug))
	if err != nil {
		return nil, fmt.Errorf("read list %s: %w", slug, err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	var list models.List
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode list %s: %w", slug, err)
	}
	return &list, nil
}

// Put serializes and stores the document, refreshing its TTL.
func (s *Lists) Put(list *models.List) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode list %s: %w", list.Slug, err)
	}
	return s.PutRaw(list.Slug, raw)
}

// PutRaw stores an already-serialized document. The merge engine uses
// this so the bytes it size-checked are exactly the bytes persisted.
func (s *Lists) PutRaw(slug string, raw []byte) error {
	if err := s.kv.Put(listKey(slug), raw, s.ttl); err != nil {
		return fmt.Errorf("write list %s: %w", slug, err)
	}
	return nil
}

// Delete removes the document. Deleting an absent list succeeds.
func (s *Lists) Delete(slug string) error {
	if err := s.kv.Delete(listKey(slug)); err != nil {
		return fmt.Errorf("delete list %s: %w", slug, err)
	}
	return nil
}
