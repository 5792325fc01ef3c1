// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/gutboard/models"
)

// Clamp bounds v into [min, max].
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ComputeScore is the GUT product. For a 1-5 scale the range is [1, 125].
func ComputeScore(g, u, t int) int {
	return g * u * t
}

// NormalizeUserScore builds a trusted UserScore from client-supplied
// factors. Missing factors default to scale.Min, all three are clamped
// into the scale, and Score is recomputed from the clamped values -
// a client-supplied score is never trusted.
func NormalizeUserScore(g, u, t *int, scale models.Scale) models.UserScore {
	pick := func(p *int) int {
		if p == nil {
			return scale.Min
		}
		return *p
	}
	cg := Clamp(pick(g), scale.Min, scale.Max)
	cu := Clamp(pick(u), scale.Min, scale.Max)
	ct := Clamp(pick(t), scale.Min, scale.Max)
	return models.UserScore{
		G:     cg,
		U:     cu,
		T:     ct,
		Score: ComputeScore(cg, cu, ct),
	}
}

// AverageScores computes the per-factor arithmetic means over all
// contributing users, rounded to one decimal place (half away from
// zero). Returns nil when the map is empty.
func AverageScores(scores map[string]models.UserScore) *models.AverageScore {
	n := len(scores)
	if n == 0 {
		return nil
	}
	var g, u, t, s int
	for _, sc := range scores {
		g += sc.G
		u += sc.U
		t += sc.T
		s += sc.Score
	}
	return &models.AverageScore{
		G:     round1(float64(g) / float64(n)),
		U:     round1(float64(u) / float64(n)),
		T:     round1(float64(t) / float64(n)),
		Score: round1(float64(s) / float64(n)),
		Count: n,
	}
}

// NormalizeScale resolves a partial scale against the system bounds.
// Min defaults to 1 and is clamped into [1, envMin]; Max defaults to 5
// and is clamped into [2, envMax]. The asymmetric lower bounds are
// deliberate. If the result is degenerate (min >= max) the whole scale
// falls back to the default {1, 5} instead of erroring.
func NormalizeScale(patch *models.ScalePatch, envMin, envMax int) models.Scale {
	min := models.DefaultScaleMin
	max := models.DefaultScaleMax
	if patch != nil {
		if patch.Min != nil {
			min = *patch.Min
		}
		if patch.Max != nil {
			max = *patch.Max
		}
	}
	min = Clamp(min, 1, envMin)
	max = Clamp(max, 2, envMax)
	if min >= max {
		return models.Scale{Min: models.DefaultScaleMin, Max: models.DefaultScaleMax}
	}
	return models.Scale{Min: min, Max: max}
}

// NormalizeItem sanitizes an item's identity and text fields. The
// scores map is preserved verbatim - per-user score writes are the
// merge engine's job - but the derived average is recomputed so the
// item is always internally consistent.
func NormalizeItem(it models.Item) models.Item {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	it.Label = SanitizeLabel(it.Label)
	it.Notes = SanitizeNotes(it.Notes)
	it.AvgScore = AverageScores(it.Scores)
	return it
}

// SanitizeTitle trims and truncates a list title.
func SanitizeTitle(s string) string {
	return truncate(strings.TrimSpace(s), models.MaxTitleLen)
}

// SanitizeLabel trims and truncates an item label, substituting the
// sentinel for empty input.
func SanitizeLabel(s string) string {
	s = truncate(strings.TrimSpace(s), models.MaxLabelLen)
	if s == "" {
		return models.UntitledLabel
	}
	return s
}

// SanitizeNotes trims and truncates item notes.
func SanitizeNotes(s string) string {
	return truncate(strings.TrimSpace(s), models.MaxNotesLen)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
