package mapview

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	apperrors "github.com/Oliejik/T-No-Posto/internal/pkg/errors"
)

// LocationState is the viewport's geolocation lifecycle.
type LocationState int

const (
	StateIdle LocationState = iota
	StateLocating
	StateLocated
	StateLocationFailed
)

func (s LocationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLocating:
		return "locating"
	case StateLocated:
		return "located"
	case StateLocationFailed:
		return "location_failed"
	}
	return "unknown"
}

// LocationProvider resolves the user's current position. Implementations
// must honor the context deadline.
type LocationProvider interface {
	CurrentPosition(ctx context.Context) (domain.Coordinate, error)
}

// ViewportController owns the current user position and decides when the map
// surface is re-centered. Until a fix arrives the fallback coordinate is in
// effect; after a failed or timed-out locate the last-known position stays.
// Re-centering happens only on an explicit locate or a position change beyond
// recenterMinKm, never on jitter.
type ViewportController struct {
	mu       sync.Mutex
	state    LocationState
	position domain.Coordinate
	hasFix   bool

	surface       Surface
	provider      LocationProvider
	zoom          int
	timeout       time.Duration
	recenterMinKm float64
	logger        *zap.Logger
}

func NewViewportController(
	surface Surface,
	provider LocationProvider,
	fallback domain.Coordinate,
	zoom int,
	timeout time.Duration,
	recenterMinKm float64,
	logger *zap.Logger,
) *ViewportController {
	return &ViewportController{
		state:         StateIdle,
		position:      fallback,
		surface:       surface,
		provider:      provider,
		zoom:          zoom,
		timeout:       timeout,
		recenterMinKm: recenterMinKm,
		logger:        logger,
	}
}

func (v *ViewportController) State() LocationState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Position returns the position currently in effect: the latest fix, or the
// fallback when none ever arrived.
func (v *ViewportController) Position() domain.Coordinate {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.position
}

// Locate requests a fresh position from the provider, bounded by the
// configured timeout. On success the surface pans to the fix; on failure the
// previous position stays in effect and the state is StateLocationFailed.
// The user retries manually, the controller never retries on its own.
func (v *ViewportController) Locate(ctx context.Context) (domain.Coordinate, error) {
	v.mu.Lock()
	if v.state == StateLocating {
		v.mu.Unlock()
		return v.position, apperrors.ErrLocationUnavailable
	}
	v.state = StateLocating
	v.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	pos, err := v.provider.CurrentPosition(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil || !pos.Valid() {
		v.state = StateLocationFailed
		v.logger.Warn("Geolocation failed, keeping previous position",
			zap.Error(err),
			zap.Float64("lat", v.position.Lat),
			zap.Float64("lng", v.position.Lng))
		return v.position, apperrors.ErrLocationUnavailable
	}

	v.state = StateLocated
	v.position = pos
	v.hasFix = true
	v.surface.PanTo(pos, v.zoom)
	return pos, nil
}

// SetPosition accepts a position pushed by the client. The first fix always
// re-centers; afterwards the surface pans only when the user moved beyond
// recenterMinKm, so a twitchy GPS does not shake the viewport. Returns true
// when the position was accepted.
func (v *ViewportController) SetPosition(pos domain.Coordinate) bool {
	if !pos.Valid() {
		v.logger.Warn("Dropping invalid client position",
			zap.Float64("lat", pos.Lat),
			zap.Float64("lng", pos.Lng))
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	recenter := !v.hasFix || v.position.DistanceKm(pos) >= v.recenterMinKm
	v.state = StateLocated
	v.position = pos
	v.hasFix = true

	if recenter {
		v.surface.PanTo(pos, v.zoom)
	}
	return true
}
