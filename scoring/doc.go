// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring implements the GUT scoring arithmetic.

Every item is scored per user along three bounded factors - gravity,
urgency, tendency - and a user's score is the product of the three:

	score := scoring.ComputeScore(g, u, t) // g * u * t

# Normalization

Client input is never trusted. NormalizeUserScore defaults missing
factors to the scale minimum, clamps all three into the list's scale,
and recomputes the product:

	us := scoring.NormalizeUserScore(req.G, req.U, req.T, list.Scale)

NormalizeScale resolves a partial {min, max} against the system bounds
and falls back to the default {1, 5} when the result is degenerate.
NormalizeItem assigns a missing id, sanitizes label and notes, and
recomputes the derived average without touching the per-user scores.

# Aggregation

AverageScores computes per-factor arithmetic means over every
contributing user, rounded to one decimal place half away from zero:

	avg := scoring.AverageScores(item.Scores) // nil when empty

All functions are pure and total over their clamped domains.
*/
package scoring
