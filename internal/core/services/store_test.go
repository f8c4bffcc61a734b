package services_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
	apperrors "github.com/lorrc/kpi-service/internal/core/errors"
	"github.com/lorrc/kpi-service/internal/core/ports"
)

var now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

type membershipRow struct {
	userID      uuid.UUID
	workspaceID uuid.UUID
	role        domain.MemberRole
}

// memoryStore is an in-memory data source for the KPI service tests. It
// implements every repository port the service depends on.
type memoryStore struct {
	users       map[uuid.UUID]domain.User
	workspaces  []domain.Workspace
	memberships []membershipRow
	tasks       map[uuid.UUID][]domain.Task
	taskErr     error

	mu          sync.Mutex
	taskFetches map[uuid.UUID]int
}

var (
	_ ports.UserRepository       = (*memoryStore)(nil)
	_ ports.TaskRepository       = (*memoryStore)(nil)
	_ ports.MembershipRepository = (*memoryStore)(nil)
	_ ports.WorkspaceRepository  = (*memoryStore)(nil)
)

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:       make(map[uuid.UUID]domain.User),
		tasks:       make(map[uuid.UUID][]domain.Task),
		taskFetches: make(map[uuid.UUID]int),
	}
}

func (s *memoryStore) addUser(name string, superAdmin bool) uuid.UUID {
	id := uuid.New()
	s.users[id] = domain.User{
		ID:           id,
		FullName:     name,
		Email:        name + "@example.com",
		IsSuperAdmin: superAdmin,
		CreatedAt:    now,
	}
	return id
}

func (s *memoryStore) addWorkspace(name string, ownerID uuid.UUID, weights domain.KPIWeights) uuid.UUID {
	id := uuid.New()
	s.workspaces = append(s.workspaces, domain.Workspace{
		ID:      id,
		Name:    name,
		OwnerID: ownerID,
		Weights: weights,
	})
	return id
}

func (s *memoryStore) join(userID, workspaceID uuid.UUID, role domain.MemberRole) {
	s.memberships = append(s.memberships, membershipRow{userID: userID, workspaceID: workspaceID, role: role})
}

// addTask records a task assigned to assignee in the workspace, created
// thirty days before now.
func (s *memoryStore) addTask(workspaceID, assignee uuid.UUID, status domain.TaskStatus) *domain.Task {
	s.tasks[workspaceID] = append(s.tasks[workspaceID], domain.Task{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Status:      status,
		AssigneeIDs: []uuid.UUID{assignee},
		CreatedAt:   now.Add(-30 * 24 * time.Hour),
		UpdatedAt:   now.Add(-time.Hour),
	})
	list := s.tasks[workspaceID]
	return &list[len(list)-1]
}

func (s *memoryStore) fetchCount(workspaceID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskFetches[workspaceID]
}

func (s *memoryStore) workspace(id uuid.UUID) domain.Workspace {
	for _, ws := range s.workspaces {
		if ws.ID == id {
			return ws
		}
	}
	return domain.Workspace{ID: id}
}

func (s *memoryStore) hydrate(row membershipRow) domain.WorkspaceMembership {
	user := s.users[row.userID]
	return domain.WorkspaceMembership{
		UserID:      row.userID,
		WorkspaceID: row.workspaceID,
		Role:        row.role,
		Member:      user.Info(),
		Workspace:   s.workspace(row.workspaceID),
	}
}

func (s *memoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (s *memoryStore) ListForWorkspace(_ context.Context, workspaceID uuid.UUID, dateRange domain.DateRange) ([]domain.Task, error) {
	s.mu.Lock()
	s.taskFetches[workspaceID]++
	s.mu.Unlock()

	if s.taskErr != nil {
		return nil, s.taskErr
	}
	var out []domain.Task
	for _, task := range s.tasks[workspaceID] {
		if dateRange.Contains(task.CreatedAt) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (s *memoryStore) Get(_ context.Context, userID, workspaceID uuid.UUID) (*domain.WorkspaceMembership, error) {
	for _, row := range s.memberships {
		if row.userID == userID && row.workspaceID == workspaceID {
			m := s.hydrate(row)
			return &m, nil
		}
	}
	return nil, apperrors.ErrMembershipNotFound
}

func (s *memoryStore) ListByWorkspace(_ context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceMembership, error) {
	var out []domain.WorkspaceMembership
	for _, row := range s.memberships {
		if row.workspaceID == workspaceID {
			out = append(out, s.hydrate(row))
		}
	}
	return out, nil
}

func (s *memoryStore) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.WorkspaceMembership, error) {
	var out []domain.WorkspaceMembership
	for _, row := range s.memberships {
		if row.userID == userID {
			out = append(out, s.hydrate(row))
		}
	}
	return out, nil
}

func (s *memoryStore) ListByWorkspacesAndRole(_ context.Context, workspaceIDs []uuid.UUID, role domain.MemberRole) ([]domain.WorkspaceMembership, error) {
	var out []domain.WorkspaceMembership
	for _, row := range s.memberships {
		if row.role == role && slices.Contains(workspaceIDs, row.workspaceID) {
			out = append(out, s.hydrate(row))
		}
	}
	return out, nil
}

func (s *memoryStore) ListIDsByMemberRole(_ context.Context, userID uuid.UUID, role domain.MemberRole) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for _, row := range s.memberships {
		if row.userID == userID && row.role == role {
			ids = append(ids, row.workspaceID)
		}
	}
	return ids, nil
}

func (s *memoryStore) ListIDsByOwner(_ context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for _, ws := range s.workspaces {
		if ws.OwnerID == ownerID {
			ids = append(ids, ws.ID)
		}
	}
	return ids, nil
}

func (s *memoryStore) ListSummaries(_ context.Context, workspaceIDs []uuid.UUID) ([]domain.WorkspaceSummary, error) {
	out := make([]domain.WorkspaceSummary, 0, len(workspaceIDs))
	for _, id := range workspaceIDs {
		ws := s.workspace(id)
		summary := domain.WorkspaceSummary{ID: id, Name: ws.Name}
		for _, row := range s.memberships {
			if row.workspaceID == id && row.role != domain.RoleCustomer {
				summary.MemberCount++
			}
		}
		out = append(out, summary)
	}
	return out, nil
}
