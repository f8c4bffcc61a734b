package kpi_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/lorrc/kpi-service/internal/core/domain"
)

var now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

type taskOption func(*domain.Task)

func newTask(status domain.TaskStatus, opts ...taskOption) domain.Task {
	task := domain.Task{
		ID:        uuid.New(),
		Status:    status,
		CreatedAt: now.Add(-30 * 24 * time.Hour),
		UpdatedAt: now.Add(-time.Hour),
	}
	for _, opt := range opts {
		opt(&task)
	}
	return task
}

func assignedTo(ids ...uuid.UUID) taskOption {
	return func(t *domain.Task) { t.AssigneeIDs = append(t.AssigneeIDs, ids...) }
}

func followedBy(ids ...uuid.UUID) taskOption {
	return func(t *domain.Task) { t.FollowerIDs = append(t.FollowerIDs, ids...) }
}

func reviewedBy(id uuid.UUID) taskOption {
	return func(t *domain.Task) { t.ReviewerID = &id }
}

func dueAt(due time.Time) taskOption {
	return func(t *domain.Task) { t.DueDate = &due }
}

func updatedAt(at time.Time) taskOption {
	return func(t *domain.Task) { t.UpdatedAt = at }
}

func subtaskOf(parent uuid.UUID) taskOption {
	return func(t *domain.Task) { t.ParentTaskID = &parent }
}

func onlyWeight(field string) domain.KPIWeights {
	var w domain.KPIWeights
	switch field {
	case "completion":
		w.Completion = 100
	case "productivity":
		w.Productivity = 100
	case "sla":
		w.SLA = 100
	case "collaboration":
		w.Collaboration = 100
	case "review":
		w.Review = 100
	}
	return w
}
