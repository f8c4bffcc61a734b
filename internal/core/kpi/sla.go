package kpi

import (
	"time"

	"github.com/lorrc/kpi-service/internal/core/domain"
)

// SLATally counts due-dated tasks and how many of them are within SLA.
type SLATally struct {
	Within int
	Total  int
}

// Ratio returns Within/Total, or 1 when no task carried a due date.
func (t SLATally) Ratio() float64 {
	if t.Total == 0 {
		return 1
	}
	return float64(t.Within) / float64(t.Total)
}

// HasDeadlines reports whether any counted task had a due date.
func (t SLATally) HasDeadlines() bool {
	return t.Total > 0
}

// WithinSLA classifies a task against its due date. The second return value
// is false for tasks without a due date, which never count either way.
//
// A done task is within SLA when its last update is on or before the due date.
// An unfinished task stays within SLA until the due date has passed.
func WithinSLA(task domain.Task, now time.Time) (within bool, applicable bool) {
	if task.DueDate == nil {
		return false, false
	}
	due := *task.DueDate
	if task.IsDone() {
		return !task.UpdatedAt.After(due), true
	}
	return !due.Before(now), true
}

// TallySLA classifies every task and counts the due-dated ones.
func TallySLA(tasks []domain.Task, now time.Time) SLATally {
	var tally SLATally
	for _, task := range tasks {
		within, ok := WithinSLA(task, now)
		if !ok {
			continue
		}
		tally.Total++
		if within {
			tally.Within++
		}
	}
	return tally
}

// CombinedSLA blends main task and subtask compliance. When both groups have
// due-dated tasks the main group weighs SLAMainTaskWeight and subtasks
// SLASubtaskWeight; a single group with deadlines decides alone; no deadlines
// at all yields 1.
func CombinedSLA(tasks []domain.Task, now time.Time) float64 {
	var mainTasks, subtasks []domain.Task
	for _, task := range tasks {
		if task.IsSubtask() {
			subtasks = append(subtasks, task)
		} else {
			mainTasks = append(mainTasks, task)
		}
	}

	main := TallySLA(mainTasks, now)
	sub := TallySLA(subtasks, now)

	switch {
	case main.HasDeadlines() && sub.HasDeadlines():
		return domain.SLAMainTaskWeight*main.Ratio() + domain.SLASubtaskWeight*sub.Ratio()
	case main.HasDeadlines():
		return main.Ratio()
	case sub.HasDeadlines():
		return sub.Ratio()
	default:
		return 1
	}
}
