package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/season-insights/internal/platform/logging"
	"github.com/riskibarqy/season-insights/internal/usecase"
)

const defaultMaxComparisonPlayers = 25

type Handler struct {
	selectionService     *usecase.SelectionService
	dashboardService     *usecase.DashboardService
	exportService        *usecase.ExportService
	maxComparisonPlayers int
	logger               *logging.Logger
	validator            *validator.Validate
}

func NewHandler(
	selectionService *usecase.SelectionService,
	dashboardService *usecase.DashboardService,
	exportService *usecase.ExportService,
	maxComparisonPlayers int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if maxComparisonPlayers <= 0 {
		maxComparisonPlayers = defaultMaxComparisonPlayers
	}

	return &Handler{
		selectionService:     selectionService,
		dashboardService:     dashboardService,
		exportService:        exportService,
		maxComparisonPlayers: maxComparisonPlayers,
		logger:               logger,
		validator:            validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := tracer.Start(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return crerr.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)
	}

	return nil
}

type playerPathRequest struct {
	Player string `validate:"required,max=200"`
}

type comparisonQueryRequest struct {
	Players []string `validate:"dive,required,max=200"`
	Format  string   `validate:"omitempty,oneof=csv xlsx"`
}

func (h *Handler) decodePlayerPath(ctx context.Context, r *http.Request) (string, error) {
	req := playerPathRequest{Player: strings.TrimSpace(r.PathValue("player"))}
	if err := h.validateRequest(ctx, req); err != nil {
		return "", err
	}
	return req.Player, nil
}

func (h *Handler) decodeComparisonQuery(ctx context.Context, r *http.Request) (comparisonQueryRequest, error) {
	query := r.URL.Query()
	req := comparisonQueryRequest{
		Players: query["player"],
		Format:  strings.ToLower(strings.TrimSpace(query.Get("format"))),
	}
	if len(req.Players) > h.maxComparisonPlayers {
		return comparisonQueryRequest{}, crerr.Wrapf(usecase.ErrInvalidInput, "at most %d players can be compared", h.maxComparisonPlayers)
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return comparisonQueryRequest{}, err
	}
	return req, nil
}

func writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
