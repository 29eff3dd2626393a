package handler

import (
	"net/http"
	"path"
	"path/filepath"

	"medauth/internal/pkg/logx"
)

// MainPage is the landing page served at "/".
const MainPage = "main.html"

// HandleMainPage serves the landing page.
func HandleMainPage(deps *AppDeps) http.HandlerFunc {
	page := filepath.Join(deps.Config.StaticDir, MainPage)

	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, page)
	}
}

// HandleStatic serves files below the static directory. The users file is
// answered with 404 even when it lives inside that directory.
func HandleStatic(deps *AppDeps) http.HandlerFunc {
	root := deps.Config.StaticDir
	files := http.FileServer(http.Dir(root))

	hidden := ""
	if deps.UsersFile != "" {
		if abs, err := filepath.Abs(deps.UsersFile); err == nil {
			hidden = abs
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if hidden != "" {
			requested, err := filepath.Abs(filepath.Join(root, filepath.FromSlash(path.Clean("/"+r.URL.Path))))
			if err == nil && requested == hidden {
				logx.Warn("Refused to serve credentials file", "path", r.URL.Path)
				http.NotFound(w, r)
				return
			}
		}

		files.ServeHTTP(w, r)
	}
}
