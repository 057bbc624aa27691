// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web serves the landing and admin pages. Pages are embedded in the
// binary; a directory on disk can replace them.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var embedded embed.FS

// Handler serves dir if set, otherwise the embedded pages
func Handler(dir string) http.Handler {
	if dir != "" {
		return http.FileServer(http.Dir(dir))
	}
	return http.FileServer(http.FS(Static()))
}

// Static returns the embedded static file tree rooted at its index
func Static() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		// static is a literal embedded directory
		panic(err)
	}
	return sub
}
