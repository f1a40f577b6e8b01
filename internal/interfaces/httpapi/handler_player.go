package httpapi

import (
	"net/http"

	"github.com/riskibarqy/season-insights/internal/domain/chart"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	options := h.selectionService.PlayerOptions(ctx)
	writeSuccess(ctx, w, http.StatusOK, playerOptionsDTO{
		Players:          options.Players,
		DefaultSelection: options.DefaultSelection,
	})
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	name, err := h.decodePlayerPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.dashboardService.PlayerProfile(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "get player profile failed", "player", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(profile))
}

func (h *Handler) GetPlayerChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "httpapi.Handler.GetPlayerChart")
	defer span.End()

	name, err := h.decodePlayerPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	kind := chart.Kind(r.PathValue("kind"))
	png, err := h.dashboardService.PlayerChart(ctx, name, kind)
	if err != nil {
		h.logger.WarnContext(ctx, "render player chart failed", "player", name, "kind", kind, "error", err)
		writeError(ctx, w, err)
		return
	}

	writePNG(w, png)
}

func (h *Handler) GetPositionBoxPlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "httpapi.Handler.GetPositionBoxPlot")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.dashboardService.PositionBoxPlot(ctx))
}

func (h *Handler) GetPositionBoxPlotPNG(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "httpapi.Handler.GetPositionBoxPlotPNG")
	defer span.End()

	png, err := h.dashboardService.PositionBoxPlotPNG(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "render position boxplot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writePNG(w, png)
}
