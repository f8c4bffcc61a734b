package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
	"github.com/lorrc/kpi-service/internal/core/ports"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of ports.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTaskRepository is a mock implementation of ports.TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

func (m *MockTaskRepository) ListForWorkspace(ctx context.Context, workspaceID uuid.UUID, dateRange domain.DateRange) ([]domain.Task, error) {
	args := m.Called(ctx, workspaceID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

// MockMembershipRepository is a mock implementation of ports.MembershipRepository
type MockMembershipRepository struct {
	mock.Mock
}

func NewMockMembershipRepository() *MockMembershipRepository {
	return &MockMembershipRepository{}
}

func (m *MockMembershipRepository) Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.WorkspaceMembership, error) {
	args := m.Called(ctx, userID, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceMembership), args.Error(1)
}

func (m *MockMembershipRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceMembership, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceMembership), args.Error(1)
}

func (m *MockMembershipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WorkspaceMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceMembership), args.Error(1)
}

func (m *MockMembershipRepository) ListByWorkspacesAndRole(ctx context.Context, workspaceIDs []uuid.UUID, role domain.MemberRole) ([]domain.WorkspaceMembership, error) {
	args := m.Called(ctx, workspaceIDs, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceMembership), args.Error(1)
}

// MockWorkspaceRepository is a mock implementation of ports.WorkspaceRepository
type MockWorkspaceRepository struct {
	mock.Mock
}

func NewMockWorkspaceRepository() *MockWorkspaceRepository {
	return &MockWorkspaceRepository{}
}

func (m *MockWorkspaceRepository) ListIDsByMemberRole(ctx context.Context, userID uuid.UUID, role domain.MemberRole) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockWorkspaceRepository) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockWorkspaceRepository) ListSummaries(ctx context.Context, workspaceIDs []uuid.UUID) ([]domain.WorkspaceSummary, error) {
	args := m.Called(ctx, workspaceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceSummary), args.Error(1)
}

// MockAuthorizationService is a mock implementation of ports.AuthorizationService
type MockAuthorizationService struct {
	mock.Mock
}

func NewMockAuthorizationService() *MockAuthorizationService {
	return &MockAuthorizationService{}
}

func (m *MockAuthorizationService) RequireWorkspaceAdmin(ctx context.Context, userID, workspaceID uuid.UUID) error {
	args := m.Called(ctx, userID, workspaceID)
	return args.Error(0)
}

func (m *MockAuthorizationService) ResolveAdminScope(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockKPIService is a mock implementation of ports.KPIService
type MockKPIService struct {
	mock.Mock
}

func NewMockKPIService() *MockKPIService {
	return &MockKPIService{}
}

func (m *MockKPIService) GetWorkspaceOverallKPI(ctx context.Context, callerID, workspaceID uuid.UUID) ([]domain.MemberOverallKPI, error) {
	args := m.Called(ctx, callerID, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberOverallKPI), args.Error(1)
}

func (m *MockKPIService) GetTeamKPIReport(ctx context.Context, params ports.TeamReportParams) (*domain.TeamKPIReport, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamKPIReport), args.Error(1)
}

var (
	_ ports.UserRepository       = (*MockUserRepository)(nil)
	_ ports.TaskRepository       = (*MockTaskRepository)(nil)
	_ ports.MembershipRepository = (*MockMembershipRepository)(nil)
	_ ports.WorkspaceRepository  = (*MockWorkspaceRepository)(nil)
	_ ports.AuthorizationService = (*MockAuthorizationService)(nil)
	_ ports.KPIService           = (*MockKPIService)(nil)
)
