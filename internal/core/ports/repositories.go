package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
)

// TaskRepository is the task metrics source of the KPI engine.
type TaskRepository interface {
	// ListForWorkspace returns the non-archived tasks of a workspace whose
	// creation time falls inside dateRange.
	ListForWorkspace(ctx context.Context, workspaceID uuid.UUID, dateRange domain.DateRange) ([]domain.Task, error)
}

// MembershipRepository reads workspace memberships together with the
// member's display details and the workspace's scoring configuration.
type MembershipRepository interface {
	Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.WorkspaceMembership, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceMembership, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkspaceMembership, error)
	ListByWorkspacesAndRole(ctx context.Context, workspaceIDs []uuid.UUID, role domain.MemberRole) ([]domain.WorkspaceMembership, error)
}

// WorkspaceRepository answers admin scope questions about workspaces.
type WorkspaceRepository interface {
	ListIDsByMemberRole(ctx context.Context, userID uuid.UUID, role domain.MemberRole) ([]uuid.UUID, error)
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	// ListSummaries returns the given workspaces with their member count,
	// customers excluded.
	ListSummaries(ctx context.Context, workspaceIDs []uuid.UUID) ([]domain.WorkspaceSummary, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
