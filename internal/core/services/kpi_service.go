package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
	apperrors "github.com/lorrc/kpi-service/internal/core/errors"
	"github.com/lorrc/kpi-service/internal/core/kpi"
	"github.com/lorrc/kpi-service/internal/core/ports"
)

// DefaultFetchConcurrency bounds concurrent data-source reads per report.
const DefaultFetchConcurrency = 8

const weightTolerance = 1e-6

// KPIServiceConfig tunes report assembly.
type KPIServiceConfig struct {
	FetchConcurrency int
	// Clock is the "now" that open tasks are judged against. Defaults to time.Now.
	Clock func() time.Time
}

// KPIService assembles member performance reports from task data.
type KPIService struct {
	authz          ports.AuthorizationService
	membershipRepo ports.MembershipRepository
	workspaceRepo  ports.WorkspaceRepository
	taskRepo       ports.TaskRepository
	concurrency    int
	clock          func() time.Time
	logger         *slog.Logger
}

var _ ports.KPIService = (*KPIService)(nil)

// NewKPIService creates a new KPI report service.
func NewKPIService(
	authz ports.AuthorizationService,
	membershipRepo ports.MembershipRepository,
	workspaceRepo ports.WorkspaceRepository,
	taskRepo ports.TaskRepository,
	cfg KPIServiceConfig,
	logger *slog.Logger,
) ports.KPIService {
	concurrency := cfg.FetchConcurrency
	if concurrency < 1 {
		concurrency = DefaultFetchConcurrency
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &KPIService{
		authz:          authz,
		membershipRepo: membershipRepo,
		workspaceRepo:  workspaceRepo,
		taskRepo:       taskRepo,
		concurrency:    concurrency,
		clock:          clock,
		logger:         logger.With("service", "kpi"),
	}
}

// GetWorkspaceOverallKPI scores every non-customer member of the workspace.
// Each member's overall KPI spans all of their workspaces, not just this one.
func (s *KPIService) GetWorkspaceOverallKPI(ctx context.Context, callerID, workspaceID uuid.UUID) ([]domain.MemberOverallKPI, error) {
	if workspaceID == uuid.Nil {
		return nil, apperrors.ErrWorkspaceIDRequired
	}
	if err := s.authz.RequireWorkspaceAdmin(ctx, callerID, workspaceID); err != nil {
		return nil, err
	}

	started := time.Now()

	memberships, err := s.membershipRepo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list workspace members: %w", err)
	}

	members := make([]domain.WorkspaceMembership, 0, len(memberships))
	userIDs := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		if m.Role == domain.RoleCustomer {
			continue
		}
		members = append(members, m)
		userIDs = append(userIDs, m.UserID)
	}

	byUser, err := fetchAll(ctx, s.concurrency, userIDs, s.membershipRepo.ListByUser)
	if err != nil {
		return nil, fmt.Errorf("list member workspaces: %w", err)
	}

	var workspaceIDs []uuid.UUID
	var spanned []domain.WorkspaceMembership
	for _, id := range userIDs {
		for _, m := range byUser[id] {
			workspaceIDs = append(workspaceIDs, m.WorkspaceID)
			spanned = append(spanned, m)
		}
	}

	tasks, err := s.fetchTasks(ctx, workspaceIDs, domain.DateRange{})
	if err != nil {
		return nil, err
	}

	s.warnUnbalancedWeights(ctx, spanned)

	now := s.clock()
	results := make([]domain.MemberOverallKPI, 0, len(members))
	for _, m := range members {
		results = append(results, scoreMember(m.Member, byUser[m.UserID], tasks, now))
	}
	kpi.RankMembers(results)

	s.logger.DebugContext(ctx, "workspace overall kpi assembled",
		"workspace_id", workspaceID.String(),
		"members", len(results),
		"workspaces", len(tasks),
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return results, nil
}

// GetTeamKPIReport builds the team report over the caller's admin scope.
//
// Members are the MEMBER-role memberships of the scope, optionally narrowed
// to a filter workspace that lies inside it. Team statistics cover the full
// ranked list; pagination is applied afterwards.
func (s *KPIService) GetTeamKPIReport(ctx context.Context, params ports.TeamReportParams) (*domain.TeamKPIReport, error) {
	scope, err := s.authz.ResolveAdminScope(ctx, params.CallerID)
	if err != nil {
		return nil, err
	}
	if len(scope) == 0 {
		return emptyTeamReport(params), nil
	}

	started := time.Now()

	target := scope
	if params.FilterWorkspaceID != nil && containsID(scope, *params.FilterWorkspaceID) {
		target = []uuid.UUID{*params.FilterWorkspaceID}
	}

	memberships, err := s.membershipRepo.ListByWorkspacesAndRole(ctx, target, domain.RoleMember)
	if err != nil {
		return nil, fmt.Errorf("list scope members: %w", err)
	}

	// Tasks are read for the whole scope: members need the target workspaces
	// and the workspace summaries need all of them.
	tasks, err := s.fetchTasks(ctx, scope, params.DateRange)
	if err != nil {
		return nil, err
	}

	summaries, err := s.workspaceRepo.ListSummaries(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list workspace summaries: %w", err)
	}
	now := s.clock()
	for i := range summaries {
		summaries[i].SLACompliance = kpi.CombinedSLA(tasks[summaries[i].ID], now)
	}

	s.warnUnbalancedWeights(ctx, memberships)

	groups := groupByUser(memberships)
	members := make([]domain.MemberOverallKPI, 0, len(groups))
	for _, g := range groups {
		members = append(members, scoreMember(g.member, g.memberships, tasks, now))
	}
	kpi.RankMembers(members)

	report := &domain.TeamKPIReport{
		Members:    domain.Paginate(members, params.Page),
		Stats:      kpi.SummarizeTeam(members),
		Workspaces: summaries,
		Pagination: domain.NewPagination(params.Page, len(members)),
		DateRange:  params.DateRange,
	}

	s.logger.DebugContext(ctx, "team kpi report assembled",
		"scope_workspaces", len(scope),
		"target_workspaces", len(target),
		"members", len(members),
		"page", params.Page.Page,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return report, nil
}

func (s *KPIService) fetchTasks(ctx context.Context, workspaceIDs []uuid.UUID, dateRange domain.DateRange) (map[uuid.UUID][]domain.Task, error) {
	tasks, err := fetchAll(ctx, s.concurrency, workspaceIDs, func(ctx context.Context, id uuid.UUID) ([]domain.Task, error) {
		return s.taskRepo.ListForWorkspace(ctx, id, dateRange)
	})
	if err != nil {
		return nil, fmt.Errorf("list workspace tasks: %w", err)
	}
	return tasks, nil
}

// warnUnbalancedWeights logs every distinct workspace whose weights do not
// add up to 100. Scores keep using the weights as configured.
func (s *KPIService) warnUnbalancedWeights(ctx context.Context, memberships []domain.WorkspaceMembership) {
	seen := make(map[uuid.UUID]struct{})
	for _, m := range memberships {
		if _, ok := seen[m.WorkspaceID]; ok {
			continue
		}
		seen[m.WorkspaceID] = struct{}{}

		sum := m.Workspace.Weights.Sum()
		if math.Abs(sum-domain.WeightTotal) > weightTolerance {
			s.logger.WarnContext(ctx, "workspace kpi weights do not sum to 100",
				"workspace_id", m.WorkspaceID.String(),
				"weight_sum", sum,
			)
		}
	}
}

// scoreMember computes a member's per-workspace KPI for each membership and
// folds them into the overall figure.
func scoreMember(
	member domain.UserInfo,
	memberships []domain.WorkspaceMembership,
	tasks map[uuid.UUID][]domain.Task,
	now time.Time,
) domain.MemberOverallKPI {
	entries := make([]domain.MemberWorkspaceKPI, 0, len(memberships))
	for _, m := range memberships {
		ws := m.Workspace
		result := kpi.ComputeMemberKPI(m.UserID, tasks[m.WorkspaceID], ws.Weights, ws.WithReviewStage, now)
		entries = append(entries, domain.MemberWorkspaceKPI{
			WorkspaceID:    m.WorkspaceID,
			WorkspaceName:  ws.Name,
			KPIScore:       result.Score,
			TasksAssigned:  result.TasksAssigned,
			TasksCompleted: result.TasksCompleted,
			Metrics:        result.Metrics,
		})
	}
	return kpi.AggregateMember(member, entries)
}

type userMemberships struct {
	member      domain.UserInfo
	memberships []domain.WorkspaceMembership
}

// groupByUser groups memberships per user, users in order of first appearance.
func groupByUser(memberships []domain.WorkspaceMembership) []userMemberships {
	index := make(map[uuid.UUID]int)
	var groups []userMemberships
	for _, m := range memberships {
		i, ok := index[m.UserID]
		if !ok {
			i = len(groups)
			index[m.UserID] = i
			groups = append(groups, userMemberships{member: m.Member})
		}
		groups[i].memberships = append(groups[i].memberships, m)
	}
	return groups
}

func emptyTeamReport(params ports.TeamReportParams) *domain.TeamKPIReport {
	page := domain.NewPageRequest(1, params.Page.Limit)
	return &domain.TeamKPIReport{
		Members:    []domain.MemberOverallKPI{},
		Workspaces: []domain.WorkspaceSummary{},
		Pagination: domain.NewPagination(page, 0),
		DateRange:  params.DateRange,
	}
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
