package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account as seen by the KPI engine.
type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	IsSuperAdmin bool
	CreatedAt    time.Time
}

// Info returns the display projection of the user.
func (u *User) Info() UserInfo {
	return UserInfo{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
	}
}
