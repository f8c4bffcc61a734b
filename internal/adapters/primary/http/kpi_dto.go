package http

import (
	"time"

	"github.com/lorrc/kpi-service/internal/core/domain"
)

// SubMetricsDTO exposes the 0-1 sub-metrics behind a workspace score.
type SubMetricsDTO struct {
	CompletionRate float64 `json:"completionRate"`
	Productivity   float64 `json:"productivity"`
	SLACompliance  float64 `json:"slaCompliance"`
	Collaboration  float64 `json:"collaboration"`
	Review         float64 `json:"review"`
}

type WorkspaceKPIDTO struct {
	WorkspaceID    string        `json:"workspaceId"`
	WorkspaceName  string        `json:"workspaceName"`
	KPIScore       int           `json:"kpiScore"`
	TasksAssigned  int           `json:"tasksAssigned"`
	TasksCompleted int           `json:"tasksCompleted"`
	Weight         float64       `json:"weight"`
	Metrics        SubMetricsDTO `json:"metrics"`
}

type MemberOverallKPIDTO struct {
	UserID              string            `json:"userId"`
	Name                string            `json:"name"`
	Email               string            `json:"email"`
	OverallKPI          int               `json:"overallKPI"`
	Rating              string            `json:"rating"`
	Breakdown           []WorkspaceKPIDTO `json:"breakdown"`
	TotalTasksAssigned  int               `json:"totalTasksAssigned"`
	TotalTasksCompleted int               `json:"totalTasksCompleted"`
	WorkspaceCount      int               `json:"workspaceCount"`
}

type TeamStatsDTO struct {
	TotalMembers   int `json:"totalMembers"`
	AverageKPI     int `json:"averageKPI"`
	HighPerformers int `json:"highPerformers"`
	TotalTasks     int `json:"totalTasks"`
	TotalCompleted int `json:"totalCompleted"`
}

type WorkspaceSummaryDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	MemberCount   int     `json:"memberCount"`
	SLACompliance float64 `json:"slaCompliance"`
}

type PaginationDTO struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// DateRangeDTO echoes the resolved bounds; an open bound is null.
type DateRangeDTO struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type TeamKPIReportDTO struct {
	Members    []MemberOverallKPIDTO `json:"members"`
	TeamStats  TeamStatsDTO          `json:"teamStats"`
	Workspaces []WorkspaceSummaryDTO `json:"workspaces"`
	Pagination PaginationDTO         `json:"pagination"`
	DateRange  DateRangeDTO          `json:"dateRange"`
}

func toSubMetricsDTO(m domain.SubMetrics) SubMetricsDTO {
	return SubMetricsDTO{
		CompletionRate: m.CompletionRate,
		Productivity:   m.Productivity,
		SLACompliance:  m.SLACompliance,
		Collaboration:  m.Collaboration,
		Review:         m.Review,
	}
}

func toMemberOverallKPIDTO(m domain.MemberOverallKPI) MemberOverallKPIDTO {
	breakdown := make([]WorkspaceKPIDTO, 0, len(m.Breakdown))
	for _, entry := range m.Breakdown {
		breakdown = append(breakdown, WorkspaceKPIDTO{
			WorkspaceID:    entry.WorkspaceID.String(),
			WorkspaceName:  entry.WorkspaceName,
			KPIScore:       entry.KPIScore,
			TasksAssigned:  entry.TasksAssigned,
			TasksCompleted: entry.TasksCompleted,
			Weight:         entry.Weight,
			Metrics:        toSubMetricsDTO(entry.Metrics),
		})
	}

	return MemberOverallKPIDTO{
		UserID:              m.Member.ID.String(),
		Name:                m.Member.FullName,
		Email:               m.Member.Email,
		OverallKPI:          m.OverallKPI,
		Rating:              string(m.Rating),
		Breakdown:           breakdown,
		TotalTasksAssigned:  m.TotalTasksAssigned,
		TotalTasksCompleted: m.TotalTasksCompleted,
		WorkspaceCount:      m.WorkspaceCount,
	}
}

func toMemberOverallKPIDTOs(members []domain.MemberOverallKPI) []MemberOverallKPIDTO {
	out := make([]MemberOverallKPIDTO, 0, len(members))
	for _, m := range members {
		out = append(out, toMemberOverallKPIDTO(m))
	}
	return out
}

func toTeamKPIReportDTO(report *domain.TeamKPIReport) TeamKPIReportDTO {
	workspaces := make([]WorkspaceSummaryDTO, 0, len(report.Workspaces))
	for _, ws := range report.Workspaces {
		workspaces = append(workspaces, WorkspaceSummaryDTO{
			ID:            ws.ID.String(),
			Name:          ws.Name,
			MemberCount:   ws.MemberCount,
			SLACompliance: ws.SLACompliance,
		})
	}

	return TeamKPIReportDTO{
		Members: toMemberOverallKPIDTOs(report.Members),
		TeamStats: TeamStatsDTO{
			TotalMembers:   report.Stats.TotalMembers,
			AverageKPI:     report.Stats.AverageKPI,
			HighPerformers: report.Stats.HighPerformers,
			TotalTasks:     report.Stats.TotalTasks,
			TotalCompleted: report.Stats.TotalCompleted,
		},
		Workspaces: workspaces,
		Pagination: PaginationDTO{
			Page:       report.Pagination.Page,
			Limit:      report.Pagination.Limit,
			Total:      report.Pagination.Total,
			TotalPages: report.Pagination.TotalPages,
			HasMore:    report.Pagination.HasMore,
		},
		DateRange: DateRangeDTO{
			StartDate: formatTime(report.DateRange.Start),
			EndDate:   formatTime(report.DateRange.End),
		},
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	return &s
}
