// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the angelito service.

# Route Registration

NewRouter creates a ServeMux with all routes:

	mux := router.NewRouter(svc, cfg)

Uses Go 1.22+ method-based routing patterns.

# Routes

Health:

	GET /health → 200 "OK"

Draw (public):

	POST /api/draw → DrawHandler.Draw
	POST /draw     → same handler

Admin view:

	GET /api/admin-data → AdminHandler.AdminData
	GET /admin-data     → same handler

Share:

	GET /api/qr.png → ShareHandler.QRCode

Static:

	GET / → embedded index.html and admin.html, or STATIC_DIR

# Middleware

All API routes are wrapped with WithLogging. CORS is applied to the whole
mux in main.go.
*/
package router
