package httpapi

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/riskibarqy/season-insights/internal/domain/chart"
)

func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "httpapi.Handler.GetComparison")
	defer span.End()

	req, err := h.decodeComparisonQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.dashboardService.Comparison(ctx, req.Players)
	if err != nil {
		h.logger.WarnContext(ctx, "get comparison failed", "players", req.Players, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(view))
}

func (h *Handler) GetComparisonChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "httpapi.Handler.GetComparisonChart")
	defer span.End()

	req, err := h.decodeComparisonQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	kind := chart.Kind(r.PathValue("kind"))
	png, selected, err := h.dashboardService.ComparisonChart(ctx, req.Players, kind)
	if err != nil {
		h.logger.WarnContext(ctx, "render comparison chart failed", "players", req.Players, "kind", kind, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !selected {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writePNG(w, png)
}

func (h *Handler) ExportComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "httpapi.Handler.ExportComparison")
	defer span.End()

	req, err := h.decodeComparisonQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	file, err := h.exportService.ExportSelected(ctx, req.Players, req.Format)
	if err != nil {
		h.logger.WarnContext(ctx, "export comparison failed", "players", req.Players, "format", req.Format, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "comparison exported", "file", file.Name, "rows", file.Rows, "bytes", len(file.Body))

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Body)
}
