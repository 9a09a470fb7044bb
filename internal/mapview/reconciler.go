package mapview

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

// Diff is the minimal set of marker operations that turns the previous
// marker set into the desired one. Updates keep marker identity so attached
// click handlers survive and the client does not flicker.
type Diff struct {
	ToAdd    []Marker
	ToUpdate []Marker
	ToRemove []uuid.UUID
}

func (d Diff) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToUpdate) == 0 && len(d.ToRemove) == 0
}

// Reconciler computes marker diffs. It is stateless; the caller owns the
// previous marker set.
type Reconciler struct {
	logger *zap.Logger
}

func NewReconciler(logger *zap.Logger) *Reconciler {
	return &Reconciler{logger: logger}
}

// Reconcile maps the visible station set onto marker operations.
//
// A station is visible when it passes the favorites filter and carries valid
// coordinates. Stations with malformed coordinates are logged and skipped;
// one bad record never blanks the map. Calling Reconcile twice with the same
// inputs yields an empty diff the second time.
func (r *Reconciler) Reconcile(
	previous map[uuid.UUID]Marker,
	stations []*domain.Station,
	filter domain.FuelType,
	favoritesOnly bool,
) Diff {
	var diff Diff

	visible := make(map[uuid.UUID]struct{}, len(stations))
	for _, station := range stations {
		if station == nil {
			continue
		}
		if favoritesOnly && !station.IsFavorite {
			continue
		}
		if !station.Coordinates.Valid() {
			r.logger.Warn("Skipping station with invalid coordinates",
				zap.String("station_id", station.ID.String()),
				zap.Float64("lat", station.Coordinates.Lat),
				zap.Float64("lng", station.Coordinates.Lng))
			continue
		}

		visible[station.ID] = struct{}{}

		marker := Marker{
			StationID:   station.ID,
			Coordinates: station.Coordinates,
			IsFavorite:  station.IsFavorite,
		}
		if value, ok := SelectDisplayPrice(station, filter); ok {
			marker.DisplayPrice = &value
		}

		prev, exists := previous[station.ID]
		switch {
		case !exists:
			diff.ToAdd = append(diff.ToAdd, marker)
		case markerChanged(prev, marker):
			diff.ToUpdate = append(diff.ToUpdate, marker)
		}
	}

	for id := range previous {
		if _, still := visible[id]; !still {
			diff.ToRemove = append(diff.ToRemove, id)
		}
	}

	return diff
}

// markerChanged reports whether any rendered property differs: displayed
// price, favorite flag or position.
func markerChanged(prev, next Marker) bool {
	if prev.IsFavorite != next.IsFavorite {
		return true
	}
	if prev.Coordinates != next.Coordinates {
		return true
	}
	return !samePrice(prev.DisplayPrice, next.DisplayPrice)
}

func samePrice(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
