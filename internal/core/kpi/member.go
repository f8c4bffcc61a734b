package kpi

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
)

// involvement is a member's relation to one workspace's task set.
type involvement struct {
	assigned             []domain.Task
	completedAssigned    int
	following            int
	completedWhileFollow int
	reviewingCompleted   int
	reviewingInReview    int
}

func partition(memberID uuid.UUID, tasks []domain.Task) involvement {
	var inv involvement
	for _, task := range tasks {
		assignee := task.HasAssignee(memberID)
		if assignee {
			inv.assigned = append(inv.assigned, task)
			if task.IsDone() {
				inv.completedAssigned++
			}
		}
		// Assignment wins over following on the same task.
		if !assignee && task.HasFollower(memberID) {
			inv.following++
			if task.IsDone() {
				inv.completedWhileFollow++
			}
		}
		if task.IsReviewedBy(memberID) {
			switch task.Status {
			case domain.TaskStatusDone:
				inv.reviewingCompleted++
			case domain.TaskStatusInReview:
				inv.reviewingInReview++
			}
		}
	}
	return inv
}

// ComputeMemberKPI scores one member against one workspace's tasks.
//
// Every assignee of a task gets full credit for it. The weights are used as
// configured: they are not renormalized and the score is not clamped, so a
// workspace whose weights do not add up to 100 gets exactly the weighted sum
// it asked for. When withReviewStage is false the review term is dropped and
// its weight is not redistributed.
func ComputeMemberKPI(memberID uuid.UUID, tasks []domain.Task, weights domain.KPIWeights, withReviewStage bool, now time.Time) domain.MemberKPI {
	inv := partition(memberID, tasks)

	metrics := domain.SubMetrics{
		CompletionRate: ratio(inv.completedAssigned, len(inv.assigned)),
		Productivity:   productivity(inv),
		SLACompliance:  TallySLA(inv.assigned, now).Ratio(),
		Collaboration:  ratio(inv.completedWhileFollow, inv.following),
	}
	if withReviewStage {
		metrics.Review = ratio(inv.reviewingCompleted, inv.reviewingCompleted+inv.reviewingInReview)
	}

	return domain.MemberKPI{
		Score:          Score(metrics, weights, withReviewStage),
		TasksAssigned:  len(inv.assigned),
		TasksCompleted: inv.completedAssigned,
		Metrics:        metrics,
	}
}

// Score folds sub-metrics into a 0-100 figure using percentage weights.
func Score(m domain.SubMetrics, w domain.KPIWeights, withReviewStage bool) int {
	sum := m.CompletionRate*w.Completion/100 +
		m.Productivity*w.Productivity/100 +
		m.SLACompliance*w.SLA/100 +
		m.Collaboration*w.Collaboration/100
	if withReviewStage {
		sum += m.Review * w.Review / 100
	}
	return int(math.Round(sum * 100))
}

func productivity(inv involvement) float64 {
	contribution := domain.PointsCompletedAssigned*float64(inv.completedAssigned) +
		domain.PointsCompletedFollowing*float64(inv.completedWhileFollow) +
		domain.PointsReviewCompleted*float64(inv.reviewingCompleted)
	return math.Min(1, contribution/domain.ProductivityCeiling)
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
