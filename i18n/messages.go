// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys
const (
	CodeRequired  = "draw.code_required"
	InvalidCode   = "draw.invalid_code"
	CodeUsed      = "draw.code_used"
	NoCandidates  = "draw.no_candidates"
	InvalidJSON   = "request.invalid_json"
	ServerError   = "server.error"
	Unauthorized  = "admin.unauthorized"
	QRUnavailable = "qr.unavailable"
)

func init() {
	es := language.Spanish
	message.SetString(es, CodeRequired, "Código requerido")
	message.SetString(es, InvalidCode, "Código inválido")
	message.SetString(es, CodeUsed, "Este código ya fue usado. No puedes volver a elegir.")
	message.SetString(es, NoCandidates, "No quedan angelitos disponibles. Contacta al organizador para revisar las asignaciones.")
	message.SetString(es, InvalidJSON, "Solicitud inválida")
	message.SetString(es, ServerError, "Ocurrió un error. Intenta de nuevo más tarde.")
	message.SetString(es, Unauthorized, "Clave de administrador inválida")
	message.SetString(es, QRUnavailable, "Código QR no configurado")

	en := language.English
	message.SetString(en, CodeRequired, "Code required")
	message.SetString(en, InvalidCode, "Invalid code")
	message.SetString(en, CodeUsed, "This code was already used. You cannot draw again.")
	message.SetString(en, NoCandidates, "No angelitos left. Contact the organizer to review the assignments.")
	message.SetString(en, InvalidJSON, "Invalid request")
	message.SetString(en, ServerError, "Something went wrong. Try again later.")
	message.SetString(en, Unauthorized, "Invalid admin key")
	message.SetString(en, QRUnavailable, "QR code not configured")
}
