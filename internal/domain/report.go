package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportResolved, ReportDismissed:
		return true
	}
	return false
}

// Report is a user complaint about a station (wrong price, closed, etc).
// StationName is denormalized so moderation lists survive station deletion.
type Report struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	StationID   uuid.UUID    `json:"station_id" db:"station_id"`
	StationName string       `json:"station_name" db:"station_name"`
	ReportedBy  uuid.UUID    `json:"reported_by" db:"reported_by"`
	Reason      string       `json:"reason" db:"reason"`
	Status      ReportStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}
