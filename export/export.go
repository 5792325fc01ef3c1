// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/danielhkuo/gutboard/models"
)

// csvHeader is the fixed column order of a CSV export. The your_*
// columns are filled from the requesting user's scores and left empty
// for items that user hasn't scored.
var csvHeader = []string{
	"label",
	"your_g", "your_u", "your_t", "your_score",
	"avg_g", "avg_u", "avg_t", "avg_score", "count",
	"notes",
}

// WriteCSV writes the list as CSV, one row per item in list order.
func WriteCSV(w io.Writer, list *models.List, userID string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range list.Items {
		row := make([]string, 0, len(csvHeader))
		row = append(row, item.Label)

		if us, ok := item.Scores[userID]; ok {
			row = append(row,
				strconv.Itoa(us.G),
				strconv.Itoa(us.U),
				strconv.Itoa(us.T),
				strconv.Itoa(us.Score),
			)
		} else {
			row = append(row, "", "", "", "")
		}

		if avg := item.AvgScore; avg != nil {
			row = append(row,
				formatFloat(avg.G),
				formatFloat(avg.U),
				formatFloat(avg.T),
				formatFloat(avg.Score),
				strconv.Itoa(avg.Count),
			)
		} else {
			row = append(row, "", "", "", "", "0")
		}

		row = append(row, item.Notes)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Envelope wraps the list for a JSON export. The document inside is the
// full stored list, so an envelope can be re-imported losslessly.
func Envelope(list *models.List, userID string, now time.Time) models.ExportEnvelope {
	if userID == "" {
		userID = models.AnonymousUser
	}
	return models.ExportEnvelope{
		ExportedAt: now.UTC(),
		ExportedBy: userID,
		List:       list,
	}
}

// Filename builds a download filename from the list slug.
func Filename(list *models.List, ext string) string {
	return fmt.Sprintf("gutboard-%s.%s", list.Slug, ext)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
