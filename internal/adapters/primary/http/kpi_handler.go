package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	mw "github.com/lorrc/kpi-service/internal/adapters/primary/http/middleware"
	"github.com/lorrc/kpi-service/internal/adapters/primary/validation"
	"github.com/lorrc/kpi-service/internal/auth"
	apperrors "github.com/lorrc/kpi-service/internal/core/errors"
	"github.com/lorrc/kpi-service/internal/core/ports"
	"github.com/lorrc/kpi-service/internal/infrastructure/logging"
)

type KPIHandler struct {
	kpiService   ports.KPIService
	errorHandler *ErrorHandler
	location     *time.Location
	logger       *slog.Logger
}

// NewKPIHandler creates the KPI report handler. Report date filters are
// resolved to whole days in loc.
func NewKPIHandler(kpiService ports.KPIService, errorHandler *ErrorHandler, loc *time.Location, logger *slog.Logger) *KPIHandler {
	if loc == nil {
		loc = time.Local
	}
	return &KPIHandler{
		kpiService:   kpiService,
		errorHandler: errorHandler,
		location:     loc,
		logger:       logger.With("handler", "kpi"),
	}
}

func (h *KPIHandler) RegisterRoutes(r chi.Router) {
	r.Get("/overall", h.HandleWorkspaceOverallKPI)
	r.Get("/team", h.HandleTeamKPIReport)
}

// HandleWorkspaceOverallKPI handles GET /kpi/overall?workspaceId=
func (h *KPIHandler) HandleWorkspaceOverallKPI(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	workspaceID, err := validation.RequireWorkspaceID(r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	ctx := logging.WithWorkspaceID(r.Context(), workspaceID.String())
	members, err := h.kpiService.GetWorkspaceOverallKPI(ctx, claims.UserID, workspaceID)
	if HandleError(w, r.WithContext(ctx), err, h.errorHandler) {
		return
	}

	WriteData(w, toMemberOverallKPIDTOs(members))
}

// HandleTeamKPIReport handles GET /kpi/team
func (h *KPIHandler) HandleTeamKPIReport(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.getClaims(w, r)
	if !ok {
		return
	}

	params := ports.TeamReportParams{
		CallerID:          claims.UserID,
		FilterWorkspaceID: validation.ParseUUIDQueryParam(r, "workspaceId"),
		Page:              validation.ParsePageRequest(r),
		DateRange:         validation.ParseDateRange(r, h.location),
	}

	ctx := r.Context()
	if params.FilterWorkspaceID != nil {
		ctx = logging.WithWorkspaceID(ctx, params.FilterWorkspaceID.String())
	}

	report, err := h.kpiService.GetTeamKPIReport(ctx, params)
	if HandleError(w, r.WithContext(ctx), err, h.errorHandler) {
		return
	}

	WriteData(w, toTeamKPIReportDTO(report))
}

func (h *KPIHandler) getClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := mw.GetClaims(r.Context())
	if !ok {
		h.errorHandler.Handle(w, r, apperrors.NewUnauthorizedError("Authentication required"))
		return nil, false
	}
	return claims, true
}
