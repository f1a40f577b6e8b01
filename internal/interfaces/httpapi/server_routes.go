package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{player}/profile", handler.GetPlayerProfile)
	mux.HandleFunc("GET /v1/players/{player}/charts/{kind}", handler.GetPlayerChart)
	mux.HandleFunc("GET /v1/positions/boxplot", handler.GetPositionBoxPlot)
	mux.HandleFunc("GET /v1/positions/boxplot.png", handler.GetPositionBoxPlotPNG)
}

func registerComparisonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/comparison", handler.GetComparison)
	mux.HandleFunc("GET /v1/comparison/charts/{kind}", handler.GetComparisonChart)
	// Download of every selected row with its original columns.
	mux.HandleFunc("GET /v1/comparison/export", handler.ExportComparison)
}
