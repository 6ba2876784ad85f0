// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// serveStatic serves files from the configured static root with standard
// static-file semantics: content type by extension, the index file for "/",
// and 404 for missing files.
//
// Extension-less paths that match no file fall back to the index file so the
// SPA's client-side router can resolve them. Assets with an extension never
// fall back: a missing bundle must surface as 404, not as an HTML page.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	// Clean as a rooted path so ".." segments can never escape the root.
	requestPath := path.Clean("/" + r.URL.Path)

	if requestPath == "/" {
		h.serveIndex(w, r)
		return
	}

	fullPath := filepath.Join(h.static.RootDir, filepath.FromSlash(requestPath))

	info, err := os.Stat(fullPath)
	if err == nil && info.Mode().IsRegular() {
		http.ServeFile(w, r, fullPath)
		return
	}

	if path.Ext(requestPath) == "" {
		h.serveIndex(w, r)
		return
	}

	http.NotFound(w, r)
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	indexPath := filepath.Join(h.static.RootDir, h.static.IndexFile)

	if _, err := os.Stat(indexPath); err != nil {
		h.logger.Error().Err(err).Str("index", indexPath).Msg("index file is not readable")
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, indexPath)
}
