package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const introPath = "/intro"

// handleSPA serves static files from dir, falling back to index.html
// for any path that doesn't match a real file (SPA client-side routing).
// Page navigations from visitors without the intro cookie go to /intro first.
func handleSPA(dir string) http.HandlerFunc {
	fs := http.Dir(dir)
	fileServer := http.FileServer(fs)

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusNotFound, "not found")
			return
		}

		if r.Method == http.MethodGet && r.URL.Path != introPath && !hasSeenIntro(r) {
			http.Redirect(w, r, introPath, http.StatusFound)
			return
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
