// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the gutboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(engine, cfg)

# Endpoints

Health:

	GET /health

List lifecycle:

	POST   /lists        - Create list
	GET    /lists/{slug} - Read list (X-List-Version → 304)
	PUT    /lists/{slug} - Merge update
	DELETE /lists/{slug} - Delete list (idempotent)

Projections:

	GET /lists/{slug}/export - CSV or JSON envelope (?format=)

# Handler Initialization

The router creates handler instances with dependency injection:

	listHandler := handlers.NewListHandler(engine, cfg)
	exportHandler := handlers.NewExportHandler(engine, cfg)

All handlers receive the merge engine and configuration.
*/
package router
