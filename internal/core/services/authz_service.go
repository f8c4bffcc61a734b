package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
	apperrors "github.com/lorrc/kpi-service/internal/core/errors"
	"github.com/lorrc/kpi-service/internal/core/ports"
)

// AuthorizationService resolves which workspaces and members a caller may see.
type AuthorizationService struct {
	userRepo       ports.UserRepository
	membershipRepo ports.MembershipRepository
	workspaceRepo  ports.WorkspaceRepository
}

// Ensure implementation matches the interface.
var _ ports.AuthorizationService = (*AuthorizationService)(nil)

// NewAuthorizationService creates a new service for authorization logic.
func NewAuthorizationService(
	userRepo ports.UserRepository,
	membershipRepo ports.MembershipRepository,
	workspaceRepo ports.WorkspaceRepository,
) ports.AuthorizationService {
	return &AuthorizationService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		workspaceRepo:  workspaceRepo,
	}
}

// RequireWorkspaceAdmin checks that the caller administers the workspace.
func (s *AuthorizationService) RequireWorkspaceAdmin(ctx context.Context, userID, workspaceID uuid.UUID) error {
	membership, err := s.membershipRepo.Get(ctx, userID, workspaceID)
	switch {
	case err == nil:
		if membership.Role == domain.RoleAdmin {
			return nil
		}
	case errors.Is(err, apperrors.ErrMembershipNotFound):
		// Not a member; only a super-admin may still pass.
	default:
		return fmt.Errorf("get membership: %w", err)
	}

	user, err := s.caller(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsSuperAdmin {
		return nil
	}

	return apperrors.NewAdminRequiredError()
}

// ResolveAdminScope lists the workspaces the caller holds the ADMIN role in,
// followed by any workspace a super-admin owns that is not already listed.
func (s *AuthorizationService) ResolveAdminScope(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	user, err := s.caller(ctx, userID)
	if err != nil {
		return nil, err
	}

	adminIDs, err := s.workspaceRepo.ListIDsByMemberRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("list admin workspaces: %w", err)
	}

	scope := make([]uuid.UUID, 0, len(adminIDs))
	seen := make(map[uuid.UUID]struct{}, len(adminIDs))
	add := func(ids []uuid.UUID) {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			scope = append(scope, id)
		}
	}
	add(adminIDs)

	if user.IsSuperAdmin {
		ownedIDs, err := s.workspaceRepo.ListIDsByOwner(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list owned workspaces: %w", err)
		}
		add(ownedIDs)
	}

	return scope, nil
}

// caller loads the authenticated user. A token for a user that no longer
// exists is treated as an invalid session.
func (s *AuthorizationService) caller(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("get caller: %w", err)
	}
	return user, nil
}
