package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
)

// AuthorizationService defines the port for resolving what a caller may see.
type AuthorizationService interface {
	// RequireWorkspaceAdmin fails with a Forbidden error unless the caller is an
	// ADMIN of the workspace or a super-admin.
	RequireWorkspaceAdmin(ctx context.Context, userID, workspaceID uuid.UUID) error
	// ResolveAdminScope returns the workspaces the caller administers, plus the
	// ones a super-admin owns, in a stable order without duplicates.
	ResolveAdminScope(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// TeamReportParams defines the input for building the team KPI report.
type TeamReportParams struct {
	CallerID          uuid.UUID
	FilterWorkspaceID *uuid.UUID
	Page              domain.PageRequest
	DateRange         domain.DateRange
}

// KPIService defines the member performance report operations.
type KPIService interface {
	// GetWorkspaceOverallKPI scores every non-customer member of a workspace
	// across all the workspaces they belong to.
	GetWorkspaceOverallKPI(ctx context.Context, callerID, workspaceID uuid.UUID) ([]domain.MemberOverallKPI, error)
	// GetTeamKPIReport builds the paginated report over the caller's admin scope.
	GetTeamKPIReport(ctx context.Context, params TeamReportParams) (*domain.TeamKPIReport, error)
}
