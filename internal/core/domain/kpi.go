package domain

import (
	"github.com/google/uuid"
)

// Scoring constants shared by every KPI calculation.
const (
	// SLAMainTaskWeight and SLASubtaskWeight split the combined SLA ratio
	// when both main tasks and subtasks carry due dates.
	SLAMainTaskWeight = 0.7
	SLASubtaskWeight  = 0.3

	// ProductivityCeiling is the contribution score treated as full productivity.
	ProductivityCeiling = 10.0

	// Contribution points per completed task, by relation to the member.
	PointsCompletedAssigned  = 1.0
	PointsCompletedFollowing = 0.5
	PointsReviewCompleted    = 0.3
)

// Rating is the qualitative band of a KPI score.
type Rating string

const (
	RatingExcellent Rating = "EXCELLENT"
	RatingGood      Rating = "GOOD"
	RatingFair      Rating = "FAIR"
	RatingPoor      Rating = "POOR"
)

// RatingBand is the lowest score that still earns a rating.
type RatingBand struct {
	Rating   Rating
	MinScore int
}

// Rating band thresholds. HighPerformerThreshold is the GOOD band floor so the
// team statistics and the per-member rating can never disagree.
const (
	ExcellentMinScore      = 80
	GoodMinScore           = 60
	FairMinScore           = 40
	HighPerformerThreshold = GoodMinScore
)

// ratingBands is ordered from the highest floor down.
var ratingBands = []RatingBand{
	{Rating: RatingExcellent, MinScore: ExcellentMinScore},
	{Rating: RatingGood, MinScore: GoodMinScore},
	{Rating: RatingFair, MinScore: FairMinScore},
}

// RatingBands returns a copy of the rating table, highest band first.
func RatingBands() []RatingBand {
	bands := make([]RatingBand, len(ratingBands), len(ratingBands)+1)
	copy(bands, ratingBands)
	return append(bands, RatingBand{Rating: RatingPoor})
}

// RatingFor maps a score onto its band.
func RatingFor(score int) Rating {
	for _, band := range ratingBands {
		if score >= band.MinScore {
			return band.Rating
		}
	}
	return RatingPoor
}

// IsHighPerformer reports whether an overall KPI reaches the high performer bar.
func IsHighPerformer(score int) bool {
	return score >= HighPerformerThreshold
}

// SubMetrics are the five normalized inputs of a KPI score, each in [0,1].
type SubMetrics struct {
	CompletionRate float64
	Productivity   float64
	SLACompliance  float64
	Collaboration  float64
	Review         float64
}

// MemberKPI is one member's score for one workspace's task set.
type MemberKPI struct {
	Score          int
	TasksAssigned  int
	TasksCompleted int
	Metrics        SubMetrics
}

// MemberWorkspaceKPI is one entry of a member's cross-workspace breakdown.
type MemberWorkspaceKPI struct {
	WorkspaceID    uuid.UUID
	WorkspaceName  string
	KPIScore       int
	TasksAssigned  int
	TasksCompleted int
	Weight         float64
	Metrics        SubMetrics
}

// MemberOverallKPI aggregates a member's per-workspace results.
type MemberOverallKPI struct {
	Member              UserInfo
	OverallKPI          int
	Rating              Rating
	Breakdown           []MemberWorkspaceKPI
	TotalTasksAssigned  int
	TotalTasksCompleted int
	WorkspaceCount      int
}

// TeamStats summarizes the full member list of a team report.
type TeamStats struct {
	TotalMembers   int
	AverageKPI     int
	HighPerformers int
	TotalTasks     int
	TotalCompleted int
}

// TeamKPIReport is the payload of the team KPI report.
type TeamKPIReport struct {
	Members    []MemberOverallKPI
	Stats      TeamStats
	Workspaces []WorkspaceSummary
	Pagination Pagination
	DateRange  DateRange
}
