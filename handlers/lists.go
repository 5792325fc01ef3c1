// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/gutboard/cliparse"
	"github.com/danielhkuo/gutboard/merge"
	"github.com/danielhkuo/gutboard/middleware"
	"github.com/danielhkuo/gutboard/models"
)

type ListHandler struct {
	engine *merge.Engine
	cfg    cliparse.Config
}

func NewListHandler(engine *merge.Engine, cfg cliparse.Config) *ListHandler {
	return &ListHandler{engine: engine, cfg: cfg}
}

// CreateList handles POST /lists
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req models.CreateListRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	actingUser := r.Header.Get("X-User-ID")

	list, merr := h.engine.Create(req, actingUser)
	if merr != nil {
		writeMergeError(w, merr)
		return
	}

	slog.Info("list created", "slug", list.Slug, "user", actingUser, "ip", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateListResponse{
		Slug: list.Slug,
	})
}

// GetList handles GET /lists/{slug}
// An X-List-Version header matching the stored version short-circuits
// to 304 so polling clients skip the body.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	list, merr := h.engine.Get(slug)
	if merr != nil {
		writeMergeError(w, merr)
		return
	}

	if v := r.Header.Get("X-List-Version"); v != "" {
		if known, err := strconv.Atoi(v); err == nil && known == list.Version {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// UpdateList handles PUT /lists/{slug}
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var req models.UpdateListRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// The body's userId wins; the header is a fallback for clients
	// that keep payloads identity-free.
	if req.UserID == "" {
		req.UserID = r.Header.Get("X-User-ID")
	}

	list, merr := h.engine.Update(slug, req)
	if merr != nil {
		writeMergeError(w, merr)
		return
	}

	slog.Info("list updated", "slug", slug, "version", list.Version, "user", req.UserID)

	middleware.JSONResponse(w, http.StatusOK, list)
}

// DeleteList handles DELETE /lists/{slug}
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	if merr := h.engine.Delete(slug); merr != nil {
		writeMergeError(w, merr)
		return
	}

	slog.Info("list deleted", "slug", slug)

	w.WriteHeader(http.StatusNoContent)
}

// writeMergeError maps the engine's failure taxonomy onto HTTP.
func writeMergeError(w http.ResponseWriter, merr *merge.Error) {
	switch merr.Kind {
	case merge.KindNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, merr.Message)

	case merge.KindInvalidIdentity, merge.KindInvalidRequest:
		middleware.ErrorResponse(w, http.StatusBadRequest, merr.Message)

	case merge.KindRateLimited:
		w.Header().Set("Retry-After", strconv.Itoa(merr.RetryAfterSeconds))
		middleware.JSONResponse(w, http.StatusTooManyRequests, models.RateLimitResponse{
			Error:             http.StatusText(http.StatusTooManyRequests),
			Message:           merr.Message,
			RetryAfterSeconds: merr.RetryAfterSeconds,
		})

	case merge.KindVersionConflict:
		middleware.JSONResponse(w, http.StatusConflict, models.ConflictResponse{
			Conflict: true,
			Server:   merr.Server,
		})

	case merge.KindTooLarge:
		middleware.JSONResponse(w, http.StatusRequestEntityTooLarge, models.TooLargeResponse{
			Error:   http.StatusText(http.StatusRequestEntityTooLarge),
			Message: merr.Message,
			SizeKB:  merr.SizeKB,
			LimitKB: merr.LimitKB,
		})

	default:
		slog.Error("list operation failed", "error", merr)
		middleware.ErrorResponse(w, http.StatusInternalServerError, merr.Message)
	}
}
