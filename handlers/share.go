// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/skip2/go-qrcode"

	"github.com/danielhkuo/angelito/cliparse"
	"github.com/danielhkuo/angelito/i18n"
	"github.com/danielhkuo/angelito/middleware"
)

const qrSize = 256

type ShareHandler struct {
	cfg cliparse.Config

	once sync.Once
	png  []byte
	err  error
}

func NewShareHandler(cfg cliparse.Config) *ShareHandler {
	return &ShareHandler{cfg: cfg}
}

// QRCode handles GET /api/qr.png
// Returns a PNG QR code pointing at the public URL of the landing page
func (h *ShareHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	if h.cfg.PublicURL == "" {
		middleware.ErrorResponse(w, http.StatusNotFound, i18n.T(r, i18n.QRUnavailable))
		return
	}

	h.once.Do(func() {
		h.png, h.err = qrcode.Encode(h.cfg.PublicURL, qrcode.Medium, qrSize)
	})
	if h.err != nil {
		slog.Error("failed to encode QR code", "error", h.err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, i18n.T(r, i18n.ServerError))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(h.png)
}
