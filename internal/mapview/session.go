package mapview

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

// StationSource fetches the station set for one user around a position.
// Implementations may block; the session tolerates out-of-order completion.
type StationSource interface {
	FetchStations(ctx context.Context, userID uuid.UUID, around domain.Coordinate) ([]*domain.Station, error)
}

// Session ties one map client to the reconciler and viewport. It owns the
// logical station set and the rendered marker set, and is the only writer to
// the surface's marker layer, so the two can never diverge.
//
// Fetches carry a monotonically increasing sequence number; a result is
// applied only if no newer result was applied before it (last write wins,
// stale responses discarded silently). The underlying fetches cannot be
// cancelled mid-flight, so the gate compares sequence numbers at resolution
// time instead of using cancellation.
type Session struct {
	source   StationSource
	surface  Surface
	viewport *ViewportController
	rec      *Reconciler
	logger   *zap.Logger

	userID   uuid.UUID
	fetchSeq atomic.Uint64

	mu            sync.Mutex
	appliedSeq    uint64
	filter        domain.FuelType
	favoritesOnly bool
	stations      []*domain.Station
	byID          map[uuid.UUID]*domain.Station
	markers       map[uuid.UUID]Marker
}

func NewSession(
	source StationSource,
	surface Surface,
	viewport *ViewportController,
	userID uuid.UUID,
	logger *zap.Logger,
) *Session {
	return &Session{
		source:   source,
		surface:  surface,
		viewport: viewport,
		rec:      NewReconciler(logger),
		logger:   logger,
		userID:   userID,
		byID:     make(map[uuid.UUID]*domain.Station),
		markers:  make(map[uuid.UUID]Marker),
	}
}

// Refresh fetches the station set and applies it unless a newer fetch
// completed in the meantime. A fetch error keeps the previous marker state
// untouched; "no data" must never corrupt the map.
func (s *Session) Refresh(ctx context.Context) error {
	seq := s.fetchSeq.Add(1)
	around := s.viewport.Position()

	stations, err := s.source.FetchStations(ctx, s.userID, around)
	if err != nil {
		s.logger.Error("Station fetch failed, keeping current markers",
			zap.Uint64("seq", seq),
			zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.appliedSeq {
		s.logger.Debug("Discarding stale station fetch",
			zap.Uint64("seq", seq),
			zap.Uint64("applied_seq", s.appliedSeq))
		return nil
	}
	s.appliedSeq = seq

	s.stations = stations
	s.byID = make(map[uuid.UUID]*domain.Station, len(stations))
	for _, st := range stations {
		s.byID[st.ID] = st
	}

	s.recomputeDistancesLocked(around)
	s.reconcileLocked()
	return nil
}

// SetFilter switches the active fuel filter and re-renders markers.
func (s *Session) SetFilter(filter domain.FuelType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filter == filter {
		return
	}
	s.filter = filter
	s.reconcileLocked()
}

// SetFavoritesOnly toggles the favorites-only view. Markers for
// non-favorite stations are removed, and restored on toggle back.
func (s *Session) SetFavoritesOnly(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favoritesOnly == enabled {
		return
	}
	s.favoritesOnly = enabled
	s.reconcileLocked()
}

// Locate runs the viewport's locate flow and, on success, refreshes station
// distances against the new position.
func (s *Session) Locate(ctx context.Context) (domain.Coordinate, error) {
	pos, err := s.viewport.Locate(ctx)
	if err != nil {
		return pos, err
	}
	s.applyPosition(pos)
	return pos, nil
}

// SetPosition applies a client-pushed position (see
// ViewportController.SetPosition) and recomputes station distances.
func (s *Session) SetPosition(pos domain.Coordinate) {
	if !s.viewport.SetPosition(pos) {
		return
	}
	s.applyPosition(pos)
}

// ResolveStation returns the current station for a marker click. Markers
// carry only the station id, so a click always resolves against the latest
// fetched data, never a snapshot captured at render time.
func (s *Session) ResolveStation(id uuid.UUID) (*domain.Station, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	station, ok := s.byID[id]
	return station, ok
}

// Markers returns a copy of the rendered marker set.
func (s *Session) Markers() map[uuid.UUID]Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uuid.UUID]Marker, len(s.markers))
	for id, m := range s.markers {
		out[id] = m
	}
	return out
}

func (s *Session) applyPosition(pos domain.Coordinate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeDistancesLocked(pos)
	s.reconcileLocked()
}

// recomputeDistancesLocked refreshes the derived Distance field of every
// station; it must run whenever the position or the station set changes.
func (s *Session) recomputeDistancesLocked(from domain.Coordinate) {
	for _, st := range s.stations {
		if !st.Coordinates.Valid() {
			st.Distance = nil
			continue
		}
		d := from.DistanceKm(st.Coordinates)
		st.Distance = &d
	}
}

// reconcileLocked diffs the desired marker set against the rendered one and
// pushes the operations to the surface.
func (s *Session) reconcileLocked() {
	diff := s.rec.Reconcile(s.markers, s.stations, s.filter, s.favoritesOnly)
	if diff.Empty() {
		return
	}

	for _, m := range diff.ToAdd {
		s.markers[m.StationID] = m
		s.surface.AddMarker(m)
	}
	for _, m := range diff.ToUpdate {
		s.markers[m.StationID] = m
		s.surface.UpdateMarker(m)
	}
	for _, id := range diff.ToRemove {
		delete(s.markers, id)
		s.surface.RemoveMarker(id)
	}
}
