package statics

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// ServeStatics serves the diary frontend from staticsDir. Paths that do not
// match a file fall back to index.html so client side routes keep working.
func ServeStatics(staticsDir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(staticsDir))
	return func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(staticsDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if _, err := os.Stat(name); err != nil {
			http.ServeFile(w, r, filepath.Join(staticsDir, "index.html"))
			return
		}
		files.ServeHTTP(w, r)
	}
}
