package mapview_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/mapview"
)

// fakeSurface records every operation the session pushes at it.
type fakeSurface struct {
	mu      sync.Mutex
	added   []mapview.Marker
	updated []mapview.Marker
	removed []uuid.UUID
	panned  []domain.Coordinate
	zooms   []int
}

func (f *fakeSurface) AddMarker(m mapview.Marker) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, m)
}

func (f *fakeSurface) UpdateMarker(m mapview.Marker) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, m)
}

func (f *fakeSurface) RemoveMarker(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
}

func (f *fakeSurface) PanTo(c domain.Coordinate, zoom int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.panned = append(f.panned, c)
	f.zooms = append(f.zooms, zoom)
}

func (f *fakeSurface) panCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.panned)
}

// staticProvider resolves immediately with a fixed position or error.
type staticProvider struct {
	pos domain.Coordinate
	err error
}

func (p *staticProvider) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	if p.err != nil {
		return domain.Coordinate{}, p.err
	}
	return p.pos, nil
}

// blockedProvider never resolves; the controller's timeout must fire.
type blockedProvider struct{}

func (p *blockedProvider) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	<-ctx.Done()
	return domain.Coordinate{}, ctx.Err()
}

type fetchResult struct {
	stations []*domain.Station
	err      error
}

// blockingSource parks every FetchStations call on a channel so tests can
// release responses in any order.
type blockingSource struct {
	mu      sync.Mutex
	pending []chan fetchResult
	started chan struct{}
}

func newBlockingSource() *blockingSource {
	return &blockingSource{started: make(chan struct{}, 16)}
}

func (b *blockingSource) FetchStations(ctx context.Context, userID uuid.UUID, around domain.Coordinate) ([]*domain.Station, error) {
	ch := make(chan fetchResult)
	b.mu.Lock()
	b.pending = append(b.pending, ch)
	b.mu.Unlock()
	b.started <- struct{}{}

	r := <-ch
	return r.stations, r.err
}

func (b *blockingSource) release(call int, r fetchResult) {
	b.mu.Lock()
	ch := b.pending[call]
	b.mu.Unlock()
	ch <- r
}

// staticSource returns the same set on every fetch.
type staticSource struct {
	stations []*domain.Station
	err      error
}

func (s *staticSource) FetchStations(ctx context.Context, userID uuid.UUID, around domain.Coordinate) ([]*domain.Station, error) {
	return s.stations, s.err
}

func station(id uuid.UUID, lat, lng float64, favorite bool, prices map[domain.FuelType]domain.PriceRecord) *domain.Station {
	return &domain.Station{
		ID:          id,
		Name:        "Posto " + id.String()[:8],
		Brand:       domain.BrandBandeiraBranca,
		Coordinates: domain.Coordinate{Lat: lat, Lng: lng},
		Prices:      prices,
		IsFavorite:  favorite,
	}
}

func prices(entries map[domain.FuelType]float64) map[domain.FuelType]domain.PriceRecord {
	out := make(map[domain.FuelType]domain.PriceRecord, len(entries))
	for fuel, value := range entries {
		out[fuel] = domain.PriceRecord{Value: value}
	}
	return out
}
