package http

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexPage []byte

// index serves the static landing page of the restaurant.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexPage)
}
