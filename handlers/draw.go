// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/angelito/assign"
	"github.com/danielhkuo/angelito/auth"
	"github.com/danielhkuo/angelito/i18n"
	"github.com/danielhkuo/angelito/middleware"
	"github.com/danielhkuo/angelito/models"
)

type DrawHandler struct {
	svc    *assign.Service
	ipSalt string
}

func NewDrawHandler(svc *assign.Service) *DrawHandler {
	// Per-process salt: IP hashes correlate within one run only
	salt, err := auth.GenerateID(16)
	if err != nil {
		slog.Warn("failed to generate IP salt", "error", err)
	}
	return &DrawHandler{svc: svc, ipSalt: salt}
}

// Draw handles POST /api/draw
func (h *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req models.DrawRequest
	// An empty body carries no code, same as {}
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, i18n.T(r, i18n.InvalidJSON))
		return
	}

	res, err := h.svc.Draw(r.Context(), req.Code)
	if err != nil {
		status, key := drawErrorStatus(err)
		if status == http.StatusInternalServerError {
			slog.Error("failed to draw angelito",
				"error", err,
				"request_id", middleware.RequestID(r.Context()),
			)
		}
		middleware.ErrorResponse(w, status, i18n.T(r, key))
		return
	}

	slog.Info("angelito drawn",
		"giver_id", res.GiverID,
		"request_id", middleware.RequestID(r.Context()),
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.ipSalt),
	)

	middleware.JSONResponse(w, http.StatusOK, models.DrawResponse{
		Success:      true,
		AngelitoName: res.Angelito.Name,
	})
}

// drawErrorStatus maps a draw failure to a status code and message key
func drawErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, assign.ErrInvalidInput):
		return http.StatusBadRequest, i18n.CodeRequired
	case errors.Is(err, assign.ErrNotFound):
		return http.StatusNotFound, i18n.InvalidCode
	case errors.Is(err, assign.ErrAlreadyUsed):
		return http.StatusBadRequest, i18n.CodeUsed
	case errors.Is(err, assign.ErrNoCandidates):
		return http.StatusBadRequest, i18n.NoCandidates
	default:
		return http.StatusInternalServerError, i18n.ServerError
	}
}
