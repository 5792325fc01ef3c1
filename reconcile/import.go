// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danielhkuo/gutboard/models"
)

// FromCSV parses a CSV export back into an update request for the
// acting user. Rows are matched against the current list by label so a
// re-import after edits still lands on the right items; unmatched rows
// become new items. Only the your_* columns feed scores, so one user's
// import can never overwrite another's contributions.
func FromCSV(r io.Reader, current *models.List, userID string) (models.UpdateListRequest, error) {
	var req models.UpdateListRequest

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return req, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return req, fmt.Errorf("empty CSV input")
	}

	cols := headerIndex(records[0])
	labelCol, ok := cols["label"]
	if !ok {
		return req, fmt.Errorf("missing required column: label")
	}

	byLabel := make(map[string]string, len(current.Items))
	for _, it := range current.Items {
		byLabel[it.Label] = it.ID
	}

	items := make([]models.ItemUpdate, 0, len(records)-1)
	for _, row := range records[1:] {
		if labelCol >= len(row) {
			continue
		}
		label := strings.TrimSpace(row[labelCol])
		if label == "" {
			continue
		}

		iu := models.ItemUpdate{Label: &label}
		if id, ok := byLabel[label]; ok {
			iu.ID = id
		}
		if notes := cell(row, cols, "notes"); notes != "" {
			iu.Notes = &notes
		}

		g, gok := cellInt(row, cols, "your_g")
		u, uok := cellInt(row, cols, "your_u")
		tv, tok := cellInt(row, cols, "your_t")
		if gok && uok && tok {
			iu.G, iu.U, iu.T = &g, &u, &tv
		}

		items = append(items, iu)
	}

	req.Items = items
	req.UserID = userID
	return req, nil
}

// FromEnvelope parses a JSON export envelope back into a full
// replacement request. The embedded document's items carry their
// scores maps, so a round-trip through export and import is lossless.
func FromEnvelope(r io.Reader) (models.UpdateListRequest, error) {
	var req models.UpdateListRequest

	var env models.ExportEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return req, fmt.Errorf("failed to parse export envelope: %w", err)
	}
	if env.List == nil {
		return req, fmt.Errorf("envelope has no list document")
	}

	items := make([]models.ItemUpdate, 0, len(env.List.Items))
	for _, it := range env.List.Items {
		label, notes := it.Label, it.Notes
		iu := models.ItemUpdate{
			ID:     it.ID,
			Label:  &label,
			Scores: it.Scores,
		}
		if notes != "" {
			iu.Notes = &notes
		}
		items = append(items, iu)
	}

	req.Title = &env.List.Title
	req.Items = items
	return req, nil
}

// headerIndex maps normalized column names to positions. Lookups are
// tolerant of case and surrounding whitespace so hand-edited files
// still import.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellInt(row []string, cols map[string]int, name string) (int, bool) {
	s := cell(row, cols, name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
