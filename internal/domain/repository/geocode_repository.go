package repository

import "context"

// GeocodeRepository resolves coordinates to a human-readable address.
// Used by the admin station editor when a pin is dropped without an address.
type GeocodeRepository interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}
