package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "BACKLOG"
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusArchived   TaskStatus = "ARCHIVED"
)

// String returns the string representation of the status
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusTodo, TaskStatusInProgress,
		TaskStatusInReview, TaskStatusDone, TaskStatusArchived:
		return true
	}
	return false
}

// Task is the read-only view of a task used for KPI computation.
// ARCHIVED tasks never reach the engine; the task source filters them.
type Task struct {
	ID           uuid.UUID
	WorkspaceID  uuid.UUID
	Status       TaskStatus
	AssigneeIDs  []uuid.UUID
	ReviewerID   *uuid.UUID
	DueDate      *time.Time
	FollowerIDs  []uuid.UUID
	ParentTaskID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSubtask reports whether the task hangs under a parent task.
func (t Task) IsSubtask() bool {
	return t.ParentTaskID != nil
}

// IsDone reports whether the task reached the DONE status.
func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

// HasAssignee reports whether userID is one of the task's assignees.
func (t Task) HasAssignee(userID uuid.UUID) bool {
	return containsID(t.AssigneeIDs, userID)
}

// HasFollower reports whether userID follows the task.
func (t Task) HasFollower(userID uuid.UUID) bool {
	return containsID(t.FollowerIDs, userID)
}

// IsReviewedBy reports whether userID is the task's reviewer.
func (t Task) IsReviewedBy(userID uuid.UUID) bool {
	return t.ReviewerID != nil && *t.ReviewerID == userID
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
