package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lorrc/kpi-service/internal/core/domain"
	"github.com/lorrc/kpi-service/internal/core/ports"
	"github.com/lorrc/kpi-service/internal/core/utils"
)

type WorkspaceRepository struct {
	pool *pgxpool.Pool
}

var _ ports.WorkspaceRepository = (*WorkspaceRepository)(nil)

func NewWorkspaceRepository(pool *pgxpool.Pool) ports.WorkspaceRepository {
	return &WorkspaceRepository{pool: pool}
}

func (r *WorkspaceRepository) ListIDsByMemberRole(ctx context.Context, userID uuid.UUID, role domain.MemberRole) ([]uuid.UUID, error) {
	const query = `
SELECT w.id
FROM members m
JOIN workspaces w ON w.id = m.workspace_id
WHERE m.user_id = $1 AND m.role = $2
ORDER BY w.created_at, w.id
`
	return r.listIDs(ctx, query, utils.ToUUID(userID), role.String())
}

func (r *WorkspaceRepository) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
SELECT id
FROM workspaces
WHERE owner_id = $1
ORDER BY created_at, id
`
	return r.listIDs(ctx, query, utils.ToUUID(ownerID))
}

// ListSummaries returns the workspaces in the order of workspaceIDs.
func (r *WorkspaceRepository) ListSummaries(ctx context.Context, workspaceIDs []uuid.UUID) ([]domain.WorkspaceSummary, error) {
	summaries := []domain.WorkspaceSummary{}
	if len(workspaceIDs) == 0 {
		return summaries, nil
	}

	const query = `
SELECT w.id, w.name, COUNT(m.user_id) FILTER (WHERE m.role <> 'CUSTOMER')
FROM workspaces w
LEFT JOIN members m ON m.workspace_id = w.id
WHERE w.id = ANY($1::uuid[])
GROUP BY w.id, w.name
ORDER BY array_position($1::uuid[], w.id)
`

	rows, err := GetDBTX(ctx, r.pool).Query(ctx, query, utils.ToUUIDs(workspaceIDs))
	if err != nil {
		return nil, fmt.Errorf("query workspace summaries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			summary domain.WorkspaceSummary
			count   int64
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &count); err != nil {
			return nil, fmt.Errorf("scan workspace summary: %w", err)
		}
		summary.MemberCount = int(count)
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workspace summaries: %w", err)
	}
	return summaries, nil
}

func (r *WorkspaceRepository) listIDs(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := GetDBTX(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workspace ids: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan workspace id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workspace ids: %w", err)
	}
	return ids, nil
}
