// Package mapview implements the server side of the live station map: which
// markers exist, what price each one displays, and where the viewport sits.
// It never talks to a rendering widget directly; everything goes through the
// Surface interface so the same logic drives a WebSocket client in production
// and a recording fake in tests.
package mapview

import (
	"github.com/google/uuid"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

// Marker is the on-map representation of one station. DisplayPrice is nil
// when the station has no price for the active filter ("no data" state).
type Marker struct {
	StationID    uuid.UUID         `json:"station_id"`
	Coordinates  domain.Coordinate `json:"coordinates"`
	DisplayPrice *float64          `json:"display_price,omitempty"`
	IsFavorite   bool              `json:"is_favorite"`
}

// Surface is the marker layer and viewport of a live map. Only the session's
// reconcile step may mutate markers; no other code path touches the surface.
type Surface interface {
	AddMarker(m Marker)
	UpdateMarker(m Marker)
	RemoveMarker(stationID uuid.UUID)
	PanTo(c domain.Coordinate, zoom int)
}
