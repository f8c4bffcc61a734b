package kpi

import (
	"cmp"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
)

// WeighBreakdown attaches an involvement weight to every workspace entry:
// the entry's share of the member's assigned tasks, or a uniform 1/N when the
// member has no assigned task anywhere. The input slice is left untouched.
func WeighBreakdown(entries []domain.MemberWorkspaceKPI) []domain.MemberWorkspaceKPI {
	weighed := make([]domain.MemberWorkspaceKPI, len(entries))
	copy(weighed, entries)
	if len(weighed) == 0 {
		return weighed
	}

	total := 0
	for _, entry := range weighed {
		total += entry.TasksAssigned
	}

	for i := range weighed {
		if total == 0 {
			weighed[i].Weight = 1 / float64(len(weighed))
			continue
		}
		weighed[i].Weight = float64(weighed[i].TasksAssigned) / float64(total)
	}
	return weighed
}

// OverallKPI is the weight-averaged score of a weighed breakdown.
func OverallKPI(weighed []domain.MemberWorkspaceKPI) int {
	sum := 0.0
	for _, entry := range weighed {
		sum += float64(entry.KPIScore) * entry.Weight
	}
	return int(math.Round(sum))
}

// AggregateMember combines a member's per-workspace results into their
// overall KPI.
func AggregateMember(member domain.UserInfo, entries []domain.MemberWorkspaceKPI) domain.MemberOverallKPI {
	breakdown := WeighBreakdown(entries)
	overall := OverallKPI(breakdown)

	result := domain.MemberOverallKPI{
		Member:     member,
		OverallKPI: overall,
		Rating:     domain.RatingFor(overall),
		Breakdown:  breakdown,
	}

	workspaces := make(map[uuid.UUID]struct{}, len(breakdown))
	for _, entry := range breakdown {
		result.TotalTasksAssigned += entry.TasksAssigned
		result.TotalTasksCompleted += entry.TasksCompleted
		workspaces[entry.WorkspaceID] = struct{}{}
	}
	result.WorkspaceCount = len(workspaces)

	return result
}

// SummarizeTeam computes the team statistics over the full member list.
func SummarizeTeam(members []domain.MemberOverallKPI) domain.TeamStats {
	stats := domain.TeamStats{TotalMembers: len(members)}
	if len(members) == 0 {
		return stats
	}

	sum := 0
	for _, m := range members {
		sum += m.OverallKPI
		stats.TotalTasks += m.TotalTasksAssigned
		stats.TotalCompleted += m.TotalTasksCompleted
		if domain.IsHighPerformer(m.OverallKPI) {
			stats.HighPerformers++
		}
	}
	stats.AverageKPI = int(math.Round(float64(sum) / float64(len(members))))

	return stats
}

// RankMembers orders members by overall KPI, highest first. Members with the
// same score keep their relative order.
func RankMembers(members []domain.MemberOverallKPI) {
	slices.SortStableFunc(members, func(a, b domain.MemberOverallKPI) int {
		return cmp.Compare(b.OverallKPI, a.OverallKPI)
	})
}
