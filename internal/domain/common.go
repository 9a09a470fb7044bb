package domain

import "github.com/Oliejik/T-No-Posto/internal/pkg/utils"

// Coordinate is an immutable WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Valid reports whether the point lies inside the WGS84 ranges. NaN fails.
func (c Coordinate) Valid() bool {
	return utils.ValidateCoordinates(c.Lat, c.Lng)
}

// DistanceKm returns the haversine distance to another point in kilometers.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	return utils.HaversineDistance(c.Lat, c.Lng, other.Lat, other.Lng)
}
