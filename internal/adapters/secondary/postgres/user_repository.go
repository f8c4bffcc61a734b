package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lorrc/kpi-service/internal/core/domain"
	apperrors "github.com/lorrc/kpi-service/internal/core/errors"
	"github.com/lorrc/kpi-service/internal/core/ports"
	"github.com/lorrc/kpi-service/internal/core/utils"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) ports.UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
SELECT id, name, email, is_super_admin, created_at
FROM users
WHERE id = $1
`

	var user domain.User
	err := GetDBTX(ctx, r.pool).QueryRow(ctx, query, utils.ToUUID(id)).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.IsSuperAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
