// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export renders a list for download.

Two formats are supported:

  - CSV: one row per item in list order, with the requesting user's
    own scores (your_*) alongside the team averages (avg_*). Items the
    user hasn't scored get empty your_* cells.
  - JSON: the full stored document wrapped in an envelope recording
    who exported it and when. Envelopes round-trip through import.

Averages are rendered with one decimal place, matching how the server
stores them.
*/
package export
