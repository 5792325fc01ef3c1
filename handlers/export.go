// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/gutboard/cliparse"
	"github.com/danielhkuo/gutboard/export"
	"github.com/danielhkuo/gutboard/merge"
	"github.com/danielhkuo/gutboard/middleware"
)

type ExportHandler struct {
	engine *merge.Engine
	cfg    cliparse.Config
}

func NewExportHandler(engine *merge.Engine, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{engine: engine, cfg: cfg}
}

// ExportList handles GET /lists/{slug}/export?format=csv|json
func (h *ExportHandler) ExportList(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	list, merr := h.engine.Get(slug)
	if merr != nil {
		writeMergeError(w, merr)
		return
	}

	userID := r.Header.Get("X-User-ID")

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.Filename(list, "csv")))
		if err := export.WriteCSV(w, list, userID); err != nil {
			slog.Error("failed to write CSV export", "slug", slug, "error", err)
		}

	case "json":
		middleware.JSONResponse(w, http.StatusOK, export.Envelope(list, userID, time.Now()))

	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "format must be csv or json")
		return
	}

	slog.Info("list exported", "slug", slug, "format", format)
}
