package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

type ProfileStatus string

const (
	ProfileActive ProfileStatus = "active"
	ProfileBanned ProfileStatus = "banned"
)

// Profile mirrors the auth provider's user record with app-level fields.
// Reputation and Contributions are maintained by the price feed worker.
type Profile struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Email         string        `json:"email" db:"email"`
	Role          Role          `json:"role" db:"role"`
	Reputation    int           `json:"reputation" db:"reputation"`
	Contributions int           `json:"contributions" db:"contributions"`
	Status        ProfileStatus `json:"status" db:"status"`
	JoinedAt      time.Time     `json:"joined_at" db:"created_at"`
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
