package httpapi

import (
	"embed"
	"net/http"
)

//go:embed docs/openapi.yaml docs/index.html
var docsFS embed.FS

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "httpapi.Handler.OpenAPI")
	defer span.End()

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	http.ServeFileFS(w, r, docsFS, "docs/openapi.yaml")
}

func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "httpapi.Handler.SwaggerUI")
	defer span.End()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeFileFS(w, r, docsFS, "docs/index.html")
}
