package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lorrc/kpi-service/internal/core/domain"
	"github.com/lorrc/kpi-service/internal/core/ports"
	"github.com/lorrc/kpi-service/internal/core/utils"
)

// TaskRepository is the pgx-backed task metrics source.
type TaskRepository struct {
	pool *pgxpool.Pool
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(pool *pgxpool.Pool) ports.TaskRepository {
	return &TaskRepository{pool: pool}
}

// ListForWorkspace returns the workspace's non-archived tasks created inside
// dateRange, bounds inclusive, with their assignee and follower sets.
func (r *TaskRepository) ListForWorkspace(ctx context.Context, workspaceID uuid.UUID, dateRange domain.DateRange) ([]domain.Task, error) {
	const query = `
SELECT
    t.id,
    t.status,
    t.reviewer_id,
    t.due_date,
    t.parent_task_id,
    t.created_at,
    t.updated_at,
    COALESCE((SELECT array_agg(a.user_id ORDER BY a.user_id) FROM task_assignees a WHERE a.task_id = t.id), '{}'),
    COALESCE((SELECT array_agg(f.user_id ORDER BY f.user_id) FROM task_followers f WHERE f.task_id = t.id), '{}')
FROM tasks t
WHERE t.workspace_id = $1
  AND t.status <> 'ARCHIVED'
  AND ($2::timestamptz IS NULL OR t.created_at >= $2)
  AND ($3::timestamptz IS NULL OR t.created_at <= $3)
ORDER BY t.created_at, t.id
`

	rows, err := GetDBTX(ctx, r.pool).Query(ctx, query,
		utils.ToUUID(workspaceID),
		utils.ToNullTime(dateRange.Start),
		utils.ToNullTime(dateRange.End),
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var (
			task        domain.Task
			status      string
			reviewerID  pgtype.UUID
			dueDate     pgtype.Timestamptz
			parentID    pgtype.UUID
			assigneeIDs []pgtype.UUID
			followerIDs []pgtype.UUID
		)
		if err := rows.Scan(
			&task.ID,
			&status,
			&reviewerID,
			&dueDate,
			&parentID,
			&task.CreatedAt,
			&task.UpdatedAt,
			&assigneeIDs,
			&followerIDs,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}

		task.WorkspaceID = workspaceID
		task.Status = domain.TaskStatus(status)
		task.ReviewerID = utils.FromNullUUID(reviewerID)
		task.DueDate = utils.FromNullTime(dueDate)
		task.ParentTaskID = utils.FromNullUUID(parentID)
		task.AssigneeIDs = utils.FromUUIDs(assigneeIDs)
		task.FollowerIDs = utils.FromUUIDs(followerIDs)
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}
