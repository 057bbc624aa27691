// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the angelito service.

# Handler Types

Each handler is a struct with service and config dependencies:

  - DrawHandler: claims an angelito with a participant code
  - AdminHandler: lists every participant with their angelito
  - ShareHandler: renders a QR code of the public landing URL

Handlers are created via constructor functions:

	drawHandler := handlers.NewDrawHandler(svc)

# Draw Flow

	POST /api/draw {"code": "..."} → {"success": true, "angelitoName": "..."}

Failures answer {"success": false, "message": "..."} with the message in
the caller's language (Spanish unless ?lang= or Accept-Language asks for
English):

	400  empty code, invalid JSON, code already used, no angelitos left
	404  unknown code
	500  store failure

# Admin View

	GET /api/admin-data → [{"id", "name", "code", "hasPicked", "angelito"}]

Open by default. When ADMIN_KEY is set the X-Admin-Key header (or ?key=)
must match it.
*/
package handlers
