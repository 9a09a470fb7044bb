package mapview_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/mapview"
)

var fallback = domain.Coordinate{Lat: -8.285816, Lng: -35.034964}

func newViewport(surface mapview.Surface, provider mapview.LocationProvider, timeout time.Duration) *mapview.ViewportController {
	return mapview.NewViewportController(surface, provider, fallback, 15, timeout, 0.05, zap.NewNop())
}

func TestViewport_FallbackBeforeAnyFix(t *testing.T) {
	v := newViewport(&fakeSurface{}, &staticProvider{}, time.Second)

	assert.Equal(t, mapview.StateIdle, v.State())
	assert.Equal(t, fallback, v.Position())
}

func TestViewport_LocateSuccessPansAtFixedZoom(t *testing.T) {
	surface := &fakeSurface{}
	fix := domain.Coordinate{Lat: -8.0476, Lng: -34.877}
	v := newViewport(surface, &staticProvider{pos: fix}, time.Second)

	pos, err := v.Locate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fix, pos)
	assert.Equal(t, mapview.StateLocated, v.State())
	require.Len(t, surface.panned, 1)
	assert.Equal(t, fix, surface.panned[0])
	assert.Equal(t, 15, surface.zooms[0])
}

func TestViewport_LocateTimeoutKeepsFallback(t *testing.T) {
	surface := &fakeSurface{}
	v := newViewport(surface, &blockedProvider{}, 20*time.Millisecond)

	pos, err := v.Locate(context.Background())

	assert.Error(t, err)
	assert.Equal(t, mapview.StateLocationFailed, v.State())
	assert.Equal(t, fallback, pos)
	assert.Zero(t, surface.panCount())
}

func TestViewport_FailedLocateKeepsLastKnown(t *testing.T) {
	surface := &fakeSurface{}
	fix := domain.Coordinate{Lat: -8.0476, Lng: -34.877}
	provider := &staticProvider{pos: fix}
	v := newViewport(surface, provider, time.Second)

	_, err := v.Locate(context.Background())
	require.NoError(t, err)

	provider.err = context.DeadlineExceeded
	pos, err := v.Locate(context.Background())

	assert.Error(t, err)
	assert.Equal(t, fix, pos, "last-known position survives a failed retry")
	assert.Equal(t, mapview.StateLocationFailed, v.State())
}

func TestViewport_JitterDoesNotRecenter(t *testing.T) {
	surface := &fakeSurface{}
	v := newViewport(surface, &staticProvider{}, time.Second)

	first := domain.Coordinate{Lat: -8.285816, Lng: -35.034964}
	require.True(t, v.SetPosition(first))
	assert.Equal(t, 1, surface.panCount(), "first fix always centers")

	// ~1 meter away, far below the 50 m re-center threshold.
	jitter := domain.Coordinate{Lat: first.Lat + 0.00001, Lng: first.Lng}
	require.True(t, v.SetPosition(jitter))
	assert.Equal(t, 1, surface.panCount())

	// A real move re-centers.
	moved := domain.Coordinate{Lat: first.Lat + 0.01, Lng: first.Lng}
	require.True(t, v.SetPosition(moved))
	assert.Equal(t, 2, surface.panCount())
}

func TestViewport_RejectsInvalidClientPosition(t *testing.T) {
	surface := &fakeSurface{}
	v := newViewport(surface, &staticProvider{}, time.Second)

	assert.False(t, v.SetPosition(domain.Coordinate{Lat: 200, Lng: 0}))
	assert.Equal(t, fallback, v.Position())
	assert.Zero(t, surface.panCount())
}
