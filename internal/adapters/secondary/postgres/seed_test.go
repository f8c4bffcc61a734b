package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lorrc/kpi-service/internal/core/domain"
	"github.com/stretchr/testify/require"
)

// seedTx opens a transaction that is rolled back when the test ends and
// returns a context that routes repository calls through it.
func seedTx(t *testing.T) (context.Context, pgx.Tx) {
	t.Helper()
	ctx := context.Background()

	tx, err := testPool.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return ContextWithTx(ctx, tx), tx
}

func seedUser(t *testing.T, ctx context.Context, tx pgx.Tx, name string, superAdmin bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := tx.Exec(ctx,
		`INSERT INTO users (id, name, email, is_super_admin) VALUES ($1, $2, $3, $4)`,
		id, name, uuid.NewString()+"@example.com", superAdmin,
	)
	require.NoError(t, err)
	return id
}

func seedWorkspace(t *testing.T, ctx context.Context, tx pgx.Tx, name string, ownerID uuid.UUID, createdAt time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := tx.Exec(ctx,
		`INSERT INTO workspaces (id, name, owner_id, created_at) VALUES ($1, $2, $3, $4)`,
		id, name, ownerID, createdAt,
	)
	require.NoError(t, err)
	return id
}

func seedMember(t *testing.T, ctx context.Context, tx pgx.Tx, userID, workspaceID uuid.UUID, role domain.MemberRole) {
	t.Helper()
	_, err := tx.Exec(ctx,
		`INSERT INTO members (user_id, workspace_id, role) VALUES ($1, $2, $3)`,
		userID, workspaceID, role.String(),
	)
	require.NoError(t, err)
}

type seedTask struct {
	status    domain.TaskStatus
	createdAt time.Time
	dueDate   *time.Time
	reviewer  *uuid.UUID
	parent    *uuid.UUID
	assignees []uuid.UUID
	followers []uuid.UUID
}

func seedTaskRow(t *testing.T, ctx context.Context, tx pgx.Tx, workspaceID uuid.UUID, task seedTask) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := tx.Exec(ctx,
		`INSERT INTO tasks (id, workspace_id, status, reviewer_id, parent_task_id, due_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		id, workspaceID, string(task.status), task.reviewer, task.parent, task.dueDate, task.createdAt,
	)
	require.NoError(t, err)

	for _, userID := range task.assignees {
		_, err := tx.Exec(ctx, `INSERT INTO task_assignees (task_id, user_id) VALUES ($1, $2)`, id, userID)
		require.NoError(t, err)
	}
	for _, userID := range task.followers {
		_, err := tx.Exec(ctx, `INSERT INTO task_followers (task_id, user_id) VALUES ($1, $2)`, id, userID)
		require.NoError(t, err)
	}
	return id
}
