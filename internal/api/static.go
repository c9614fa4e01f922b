package api

import (
	_ "embed"
	"net/http"
)

const stylesheetPath = "/static/app.css"

//go:embed static/app.css
var stylesheet []byte

// Stylesheet serves the page stylesheet
// GET /static/app.css
func Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(stylesheet)
}
