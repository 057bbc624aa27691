// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/angelito/assign"
	"github.com/danielhkuo/angelito/auth"
	"github.com/danielhkuo/angelito/cliparse"
	"github.com/danielhkuo/angelito/i18n"
	"github.com/danielhkuo/angelito/middleware"
)

type AdminHandler struct {
	svc *assign.Service
	cfg cliparse.Config
}

func NewAdminHandler(svc *assign.Service, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{svc: svc, cfg: cfg}
}

// AdminData handles GET /api/admin-data
// Lists every participant with the name of their angelito
func (h *AdminHandler) AdminData(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if adminKey == "" {
		adminKey = r.URL.Query().Get("key")
	}
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, i18n.T(r, i18n.Unauthorized))
		return
	}

	entries, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list participants",
			"error", err,
			"request_id", middleware.RequestID(r.Context()),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, i18n.T(r, i18n.ServerError))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
