package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lorrc/kpi-service/internal/core/domain"
	apperrors "github.com/lorrc/kpi-service/internal/core/errors"
	"github.com/lorrc/kpi-service/internal/core/ports"
	"github.com/lorrc/kpi-service/internal/core/utils"
)

// membershipColumns selects a membership hydrated with the member's display
// details and the workspace's scoring configuration.
const membershipColumns = `
SELECT
    m.user_id,
    m.workspace_id,
    m.role,
    u.name,
    u.email,
    w.name,
    w.owner_id,
    w.with_review_stage,
    w.kpi_completion_weight,
    w.kpi_productivity_weight,
    w.kpi_sla_weight,
    w.kpi_collaboration_weight,
    w.kpi_review_weight
FROM members m
JOIN users u ON u.id = m.user_id
JOIN workspaces w ON w.id = m.workspace_id
`

type MembershipRepository struct {
	pool *pgxpool.Pool
}

var _ ports.MembershipRepository = (*MembershipRepository)(nil)

func NewMembershipRepository(pool *pgxpool.Pool) ports.MembershipRepository {
	return &MembershipRepository{pool: pool}
}

func (r *MembershipRepository) Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.WorkspaceMembership, error) {
	query := membershipColumns + `
WHERE m.user_id = $1 AND m.workspace_id = $2
`

	membership, err := scanMembership(GetDBTX(ctx, r.pool).QueryRow(ctx, query, utils.ToUUID(userID), utils.ToUUID(workspaceID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceMembership, error) {
	query := membershipColumns + `
WHERE m.workspace_id = $1
ORDER BY u.name, m.user_id
`
	return r.list(ctx, query, utils.ToUUID(workspaceID))
}

func (r *MembershipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkspaceMembership, error) {
	query := membershipColumns + `
WHERE m.user_id = $1
ORDER BY w.created_at, w.id
`
	return r.list(ctx, query, utils.ToUUID(userID))
}

// ListByWorkspacesAndRole returns the memberships with role across the given
// workspaces, clustered by user.
func (r *MembershipRepository) ListByWorkspacesAndRole(ctx context.Context, workspaceIDs []uuid.UUID, role domain.MemberRole) ([]domain.WorkspaceMembership, error) {
	if len(workspaceIDs) == 0 {
		return []domain.WorkspaceMembership{}, nil
	}

	query := membershipColumns + `
WHERE m.workspace_id = ANY($1::uuid[]) AND m.role = $2
ORDER BY u.name, m.user_id, w.created_at, w.id
`
	return r.list(ctx, query, utils.ToUUIDs(workspaceIDs), role.String())
}

func (r *MembershipRepository) list(ctx context.Context, query string, args ...any) ([]domain.WorkspaceMembership, error) {
	rows, err := GetDBTX(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query memberships: %w", err)
	}
	defer rows.Close()

	memberships := []domain.WorkspaceMembership{}
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		memberships = append(memberships, membership)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memberships: %w", err)
	}
	return memberships, nil
}

func scanMembership(row pgx.Row) (domain.WorkspaceMembership, error) {
	var (
		m    domain.WorkspaceMembership
		role string
	)
	err := row.Scan(
		&m.UserID,
		&m.WorkspaceID,
		&role,
		&m.Member.FullName,
		&m.Member.Email,
		&m.Workspace.Name,
		&m.Workspace.OwnerID,
		&m.Workspace.WithReviewStage,
		&m.Workspace.Weights.Completion,
		&m.Workspace.Weights.Productivity,
		&m.Workspace.Weights.SLA,
		&m.Workspace.Weights.Collaboration,
		&m.Workspace.Weights.Review,
	)
	if err != nil {
		return m, err
	}

	m.Role = domain.MemberRole(role)
	m.Member.ID = m.UserID
	m.Workspace.ID = m.WorkspaceID
	return m, nil
}
