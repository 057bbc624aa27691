// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package i18n resolves the caller's language and prints localized
// messages. Spanish is the default; English is available through ?lang=en
// or Accept-Language.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return supported
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// ResolveTag picks the language for a request: the lang query parameter
// wins over Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}

	var wanted []language.Tag
	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, err := language.Parse(langValue); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			wanted = append(wanted, tags...)
		}
	}
	if len(wanted) == 0 {
		return Default()
	}

	_, idx, confidence := matcher.Match(wanted...)
	if confidence == language.No {
		return Default()
	}
	return supported[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// T returns the message for key in the request's language
func T(r *http.Request, key string) string {
	return Printer(ResolveTag(r)).Sprintf(key)
}
