package app

import (
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/season-insights/internal/config"
	"github.com/riskibarqy/season-insights/internal/domain/season"
	"github.com/riskibarqy/season-insights/internal/infrastructure/export"
	"github.com/riskibarqy/season-insights/internal/infrastructure/render"
	"github.com/riskibarqy/season-insights/internal/interfaces/httpapi"
	"github.com/riskibarqy/season-insights/internal/platform/cache"
	"github.com/riskibarqy/season-insights/internal/platform/logging"
	"github.com/riskibarqy/season-insights/internal/usecase"
)

// NewHTTPServer wires the dashboard over an already loaded season table.
func NewHTTPServer(cfg config.Config, table *season.Table, logger *logging.Logger) (*http.Server, error) {
	if table == nil {
		return nil, crerr.New("season table is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	selectionSvc := usecase.NewSelectionService(table)
	dashboardSvc := usecase.NewDashboardService(
		selectionSvc,
		render.NewRenderer(cfg.ChartWidthInch, cfg.ChartHeightInch),
	).WithChartCache(cache.NewStore[[]byte](cfg.ChartCacheEntries))
	exportSvc := usecase.NewExportService(selectionSvc, map[string]usecase.Exporter{
		export.FormatCSV:  export.NewCSVEncoder(),
		export.FormatXLSX: export.NewXLSXEncoder(),
	})

	handler := httpapi.NewHandler(selectionSvc, dashboardSvc, exportSvc, cfg.MaxComparisonPlayers, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, crerr.New("http server addr cannot be empty")
	}

	return server, nil
}
