package kpi_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
	"github.com/lorrc/kpi-service/internal/core/kpi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(score, assigned, completed int) domain.MemberWorkspaceKPI {
	return domain.MemberWorkspaceKPI{
		WorkspaceID:    uuid.New(),
		KPIScore:       score,
		TasksAssigned:  assigned,
		TasksCompleted: completed,
	}
}

func TestWeighBreakdown_ByInvolvement(t *testing.T) {
	entries := []domain.MemberWorkspaceKPI{entry(80, 10, 8), entry(20, 0, 0)}

	weighed := kpi.WeighBreakdown(entries)
	require.Len(t, weighed, 2)

	assert.Equal(t, 1.0, weighed[0].Weight)
	assert.Equal(t, 0.0, weighed[1].Weight)
	assert.Equal(t, 80, kpi.OverallKPI(weighed))

	// The input stays untouched.
	assert.Equal(t, 0.0, entries[0].Weight)
}

func TestWeighBreakdown_UniformFallback(t *testing.T) {
	entries := []domain.MemberWorkspaceKPI{entry(20, 0, 0), entry(40, 0, 0), entry(90, 0, 0)}

	weighed := kpi.WeighBreakdown(entries)
	for _, e := range weighed {
		assert.InDelta(t, 1.0/3.0, e.Weight, 1e-9)
	}
	assert.Equal(t, 50, kpi.OverallKPI(weighed))
}

func TestWeighBreakdown_WeightsSumToOne(t *testing.T) {
	entries := []domain.MemberWorkspaceKPI{entry(70, 3, 1), entry(55, 7, 2), entry(10, 1, 0)}

	sum := 0.0
	for _, e := range kpi.WeighBreakdown(entries) {
		sum += e.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestOverallKPI_IsWeightedNotSimpleMean(t *testing.T) {
	weighed := kpi.WeighBreakdown([]domain.MemberWorkspaceKPI{entry(90, 9, 9), entry(10, 1, 0)})

	// 90*0.9 + 10*0.1 = 82, while the plain mean would be 50.
	assert.Equal(t, 82, kpi.OverallKPI(weighed))
}

func TestWeighBreakdown_Empty(t *testing.T) {
	weighed := kpi.WeighBreakdown(nil)
	assert.Empty(t, weighed)
	assert.Equal(t, 0, kpi.OverallKPI(weighed))
}

func TestAggregateMember(t *testing.T) {
	member := domain.UserInfo{ID: uuid.New(), FullName: "Dana Reyes", Email: "dana@example.com"}
	entries := []domain.MemberWorkspaceKPI{entry(90, 6, 5), entry(60, 2, 1)}

	result := kpi.AggregateMember(member, entries)

	assert.Equal(t, member, result.Member)
	// 90*0.75 + 60*0.25 = 82.5
	assert.Equal(t, 83, result.OverallKPI)
	assert.Equal(t, domain.RatingExcellent, result.Rating)
	assert.Equal(t, 8, result.TotalTasksAssigned)
	assert.Equal(t, 6, result.TotalTasksCompleted)
	assert.Equal(t, 2, result.WorkspaceCount)
	require.Len(t, result.Breakdown, 2)
	assert.InDelta(t, 0.75, result.Breakdown[0].Weight, 1e-9)
}

func TestSummarizeTeam(t *testing.T) {
	members := []domain.MemberOverallKPI{
		{OverallKPI: 90, TotalTasksAssigned: 10, TotalTasksCompleted: 9},
		{OverallKPI: 60, TotalTasksAssigned: 4, TotalTasksCompleted: 2},
		{OverallKPI: 59, TotalTasksAssigned: 3, TotalTasksCompleted: 1},
		{OverallKPI: 0},
	}

	stats := kpi.SummarizeTeam(members)

	assert.Equal(t, 4, stats.TotalMembers)
	// 209 / 4 = 52.25
	assert.Equal(t, 52, stats.AverageKPI)
	assert.Equal(t, 2, stats.HighPerformers)
	assert.Equal(t, 17, stats.TotalTasks)
	assert.Equal(t, 12, stats.TotalCompleted)
}

func TestSummarizeTeam_Empty(t *testing.T) {
	assert.Equal(t, domain.TeamStats{}, kpi.SummarizeTeam(nil))
}

func TestRankMembers(t *testing.T) {
	first := domain.MemberOverallKPI{Member: domain.UserInfo{FullName: "first"}, OverallKPI: 40}
	second := domain.MemberOverallKPI{Member: domain.UserInfo{FullName: "second"}, OverallKPI: 75}
	third := domain.MemberOverallKPI{Member: domain.UserInfo{FullName: "third"}, OverallKPI: 40}

	members := []domain.MemberOverallKPI{first, second, third}
	kpi.RankMembers(members)

	assert.Equal(t, "second", members[0].Member.FullName)
	assert.Equal(t, "first", members[1].Member.FullName)
	assert.Equal(t, "third", members[2].Member.FullName)
}
