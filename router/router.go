// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/angelito/assign"
	"github.com/danielhkuo/angelito/cliparse"
	"github.com/danielhkuo/angelito/handlers"
	"github.com/danielhkuo/angelito/middleware"
	"github.com/danielhkuo/angelito/web"
)

func NewRouter(svc *assign.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	drawHandler := handlers.NewDrawHandler(svc)
	adminHandler := handlers.NewAdminHandler(svc, cfg)
	shareHandler := handlers.NewShareHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Draw (public)
	mux.HandleFunc("POST /api/draw", middleware.WithLogging(drawHandler.Draw))
	mux.HandleFunc("POST /draw", middleware.WithLogging(drawHandler.Draw))

	// Admin view (open unless an admin key is configured)
	mux.HandleFunc("GET /api/admin-data", middleware.WithLogging(adminHandler.AdminData))
	mux.HandleFunc("GET /admin-data", middleware.WithLogging(adminHandler.AdminData))

	// Share
	mux.HandleFunc("GET /api/qr.png", middleware.WithLogging(shareHandler.QRCode))

	// Landing page and static assets
	mux.Handle("GET /", web.Handler(cfg.StaticDir))

	return mux
}
