package domain

import (
	"time"

	"github.com/google/uuid"
)

type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceActive   Audience = "active"
	AudienceInactive Audience = "inactive"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceAll, AudienceActive, AudienceInactive:
		return true
	}
	return false
}

// AppNotification is an admin broadcast. Reach is the estimated audience size
// at send time; actual delivery is not implemented, the record is the whole
// effect.
type AppNotification struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Message   string     `json:"message" db:"message"`
	Audience  Audience   `json:"audience" db:"audience"`
	Reach     int        `json:"reach" db:"reach"`
	SentAt    *time.Time `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Statistics backs the admin dashboard.
type Statistics struct {
	Stations       int                  `json:"stations"`
	Users          int                  `json:"users"`
	PendingReports int                  `json:"pending_reports"`
	AveragePrices  map[FuelType]float64 `json:"average_prices"`
	LastUpdated    time.Time            `json:"last_updated"`
}
