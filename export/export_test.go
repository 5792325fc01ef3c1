// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/danielhkuo/gutboard/models"
)

const userA = "11111111-1111-4111-8111-111111111111"

func testList() *models.List {
	return &models.List{
		Slug:  "abc123",
		Title: "Sprint triage",
		Scale: models.Scale{Min: 1, Max: 5},
		Items: []models.Item{
			{
				ID:    "item-1",
				Label: "Fix deploy",
				Notes: "flaky since tuesday",
				Scores: map[string]models.UserScore{
					userA: {G: 5, U: 5, T: 4, Score: 100},
				},
				AvgScore: &models.AverageScore{G: 4.5, U: 4.5, T: 4.0, Score: 82.0, Count: 2},
			},
			{
				ID:    "item-2",
				Label: "Unscored",
			},
		},
		Version:   3,
		UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testList(), userA); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d records", len(records))
	}

	if records[0][0] != "label" || records[0][10] != "notes" {
		t.Errorf("Unexpected header: %v", records[0])
	}

	scored := records[1]
	if scored[0] != "Fix deploy" {
		t.Errorf("Expected label Fix deploy, got %q", scored[0])
	}
	if scored[1] != "5" || scored[4] != "100" {
		t.Errorf("Expected your_g=5 your_score=100, got %v", scored)
	}
	if scored[5] != "4.5" || scored[8] != "82.0" || scored[9] != "2" {
		t.Errorf("Expected avg columns 4.5/82.0/2, got %v", scored)
	}
	if scored[10] != "flaky since tuesday" {
		t.Errorf("Expected notes column, got %q", scored[10])
	}

	unscored := records[2]
	if unscored[1] != "" || unscored[4] != "" {
		t.Errorf("Unscored item should have empty your_* cells, got %v", unscored)
	}
	if unscored[9] != "0" {
		t.Errorf("Expected count 0 for unscored item, got %q", unscored[9])
	}
}

func TestWriteCSVOmitsOtherUsersScores(t *testing.T) {
	var buf bytes.Buffer
	otherUser := "99999999-9999-4999-8999-999999999999"
	if err := WriteCSV(&buf, testList(), otherUser); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, _ := csv.NewReader(&buf).ReadAll()
	if records[1][1] != "" {
		t.Errorf("your_g should be empty for a user who hasn't scored, got %q", records[1][1])
	}
	// Averages stay visible regardless of who exports.
	if records[1][8] != "82.0" {
		t.Errorf("Expected avg_score 82.0, got %q", records[1][8])
	}
}

func TestEnvelope(t *testing.T) {
	list := testList()
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	env := Envelope(list, userA, now)
	if env.ExportedBy != userA {
		t.Errorf("Expected exportedBy %s, got %s", userA, env.ExportedBy)
	}
	if !env.ExportedAt.Equal(now) {
		t.Errorf("Expected exportedAt %v, got %v", now, env.ExportedAt)
	}
	if env.List != list {
		t.Error("Envelope should carry the list document")
	}

	anon := Envelope(list, "", now)
	if anon.ExportedBy != models.AnonymousUser {
		t.Errorf("Expected anonymous exporter, got %s", anon.ExportedBy)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(testList(), "csv"); got != "gutboard-abc123.csv" {
		t.Errorf("Expected gutboard-abc123.csv, got %q", got)
	}
}
