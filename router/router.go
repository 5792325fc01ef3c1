// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/gutboard/cliparse"
	"github.com/danielhkuo/gutboard/handlers"
	"github.com/danielhkuo/gutboard/merge"
	"github.com/danielhkuo/gutboard/middleware"
)

func NewRouter(engine *merge.Engine, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	listHandler := handlers.NewListHandler(engine, cfg)
	exportHandler := handlers.NewExportHandler(engine, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// List lifecycle
	mux.HandleFunc("POST /lists", middleware.WithLogging(listHandler.CreateList))
	mux.HandleFunc("GET /lists/{slug}", middleware.WithLogging(listHandler.GetList))
	mux.HandleFunc("PUT /lists/{slug}", middleware.WithLogging(listHandler.UpdateList))
	mux.HandleFunc("DELETE /lists/{slug}", middleware.WithLogging(listHandler.DeleteList))

	// Projections
	mux.HandleFunc("GET /lists/{slug}/export", middleware.WithLogging(exportHandler.ExportList))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("gutboard API v1"))
	})

	return mux
}
