package domain

import (
	"github.com/google/uuid"
)

// MemberRole is the role a user holds inside one workspace.
type MemberRole string

const (
	RoleAdmin    MemberRole = "ADMIN"
	RoleMember   MemberRole = "MEMBER"
	RoleVisitor  MemberRole = "VISITOR"
	RoleCustomer MemberRole = "CUSTOMER"
)

// String returns the string representation of the role
func (r MemberRole) String() string {
	return string(r)
}

// IsValid checks if the role is a known value
func (r MemberRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleVisitor, RoleCustomer:
		return true
	}
	return false
}

// KPIWeights holds the per-workspace percentage weight of each sub-metric.
// The values are applied as configured; nothing checks that they add up to 100.
type KPIWeights struct {
	Completion    float64
	Productivity  float64
	SLA           float64
	Collaboration float64
	Review        float64
}

// DefaultKPIWeights is the weight split a new workspace starts with.
func DefaultKPIWeights() KPIWeights {
	return KPIWeights{
		Completion:    30,
		Productivity:  20,
		SLA:           20,
		Collaboration: 15,
		Review:        15,
	}
}

// WeightTotal is what a balanced set of percentage weights adds up to.
const WeightTotal = 100.0

// Sum returns the total of the five weights.
func (w KPIWeights) Sum() float64 {
	return w.Completion + w.Productivity + w.SLA + w.Collaboration + w.Review
}

// Workspace carries the scoring configuration of a workspace.
type Workspace struct {
	ID              uuid.UUID
	Name            string
	OwnerID         uuid.UUID
	WithReviewStage bool
	Weights         KPIWeights
}

// WorkspaceMembership links a user to a workspace together with the
// workspace's scoring configuration.
type WorkspaceMembership struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Role        MemberRole
	Member      UserInfo
	Workspace   Workspace
}

// WorkspaceSummary is one admin-scope workspace as listed in the team report.
// SLACompliance blends main task and subtask compliance over the reported tasks.
type WorkspaceSummary struct {
	ID            uuid.UUID
	Name          string
	MemberCount   int
	SLACompliance float64
}
