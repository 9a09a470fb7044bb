package mapview_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/mapview"
)

func applyDiff(markers map[uuid.UUID]mapview.Marker, diff mapview.Diff) {
	for _, m := range diff.ToAdd {
		markers[m.StationID] = m
	}
	for _, m := range diff.ToUpdate {
		markers[m.StationID] = m
	}
	for _, id := range diff.ToRemove {
		delete(markers, id)
	}
}

func TestReconcile_AddsNewStations(t *testing.T) {
	rec := mapview.NewReconciler(zap.NewNop())
	a := station(uuid.New(), -8.28, -35.03, false, prices(map[domain.FuelType]float64{domain.FuelEtanol: 3.49}))
	b := station(uuid.New(), -8.29, -35.04, false, nil)

	diff := rec.Reconcile(nil, []*domain.Station{a, b}, domain.FuelFilterAll, false)

	require.Len(t, diff.ToAdd, 2)
	assert.Empty(t, diff.ToUpdate)
	assert.Empty(t, diff.ToRemove)

	byID := map[uuid.UUID]mapview.Marker{}
	applyDiff(byID, diff)
	require.NotNil(t, byID[a.ID].DisplayPrice)
	assert.Equal(t, 3.49, *byID[a.ID].DisplayPrice)
	// Stations without prices still render, in the "no data" state.
	assert.Nil(t, byID[b.ID].DisplayPrice)
}

func TestReconcile_Idempotent(t *testing.T) {
	rec := mapview.NewReconciler(zap.NewNop())
	stations := []*domain.Station{
		station(uuid.New(), -8.28, -35.03, true, prices(map[domain.FuelType]float64{domain.FuelEtanol: 3.49})),
		station(uuid.New(), -8.29, -35.04, false, nil),
	}

	markers := map[uuid.UUID]mapview.Marker{}
	applyDiff(markers, rec.Reconcile(markers, stations, domain.FuelFilterAll, false))

	second := rec.Reconcile(markers, stations, domain.FuelFilterAll, false)
	assert.True(t, second.Empty())
}

func TestReconcile_UpdateInPlaceOnPriceChange(t *testing.T) {
	rec := mapview.NewReconciler(zap.NewNop())
	st := station(uuid.New(), -8.28, -35.03, false, prices(map[domain.FuelType]float64{domain.FuelEtanol: 3.49}))

	markers := map[uuid.UUID]mapview.Marker{}
	applyDiff(markers, rec.Reconcile(markers, []*domain.Station{st}, domain.FuelFilterAll, false))

	st.Prices[domain.FuelEtanol] = domain.PriceRecord{Value: 3.39}
	diff := rec.Reconcile(markers, []*domain.Station{st}, domain.FuelFilterAll, false)

	assert.Empty(t, diff.ToAdd)
	assert.Empty(t, diff.ToRemove)
	require.Len(t, diff.ToUpdate, 1)
	assert.Equal(t, 3.39, *diff.ToUpdate[0].DisplayPrice)
}

func TestReconcile_FilterSwitchUpdatesDisplayPrice(t *testing.T) {
	rec := mapview.NewReconciler(zap.NewNop())
	st := station(uuid.New(), -8.28, -35.03, false, prices(map[domain.FuelType]float64{
		domain.FuelEtanol:        3.49,
		domain.FuelGasolinaComum: 5.89,
	}))

	markers := map[uuid.UUID]mapview.Marker{}
	applyDiff(markers, rec.Reconcile(markers, []*domain.Station{st}, domain.FuelFilterAll, false))

	diff := rec.Reconcile(markers, []*domain.Station{st}, domain.FuelGasolinaComum, false)
	require.Len(t, diff.ToUpdate, 1)
	assert.Equal(t, 5.89, *diff.ToUpdate[0].DisplayPrice)
}

func TestReconcile_FavoritesToggle(t *testing.T) {
	rec := mapview.NewReconciler(zap.NewNop())
	st := station(uuid.New(), -8.28, -35.03, false, nil)

	markers := map[uuid.UUID]mapview.Marker{}
	applyDiff(markers, rec.Reconcile(markers, []*domain.Station{st}, domain.FuelFilterAll, false))
	require.Contains(t, markers, st.ID)

	// Switching to favorites-only removes the non-favorite station.
	diff := rec.Reconcile(markers, []*domain.Station{st}, domain.FuelFilterAll, true)
	require.Len(t, diff.ToRemove, 1)
	assert.Equal(t, st.ID, diff.ToRemove[0])
	applyDiff(markers, diff)

	// Toggling back re-adds it: it was absent, so this is an add, not an
	// update.
	diff = rec.Reconcile(markers, []*domain.Station{st}, domain.FuelFilterAll, false)
	require.Len(t, diff.ToAdd, 1)
	assert.Empty(t, diff.ToUpdate)
	assert.Equal(t, st.ID, diff.ToAdd[0].StationID)
}

func TestReconcile_InvalidCoordinatesSkipped(t *testing.T) {
	rec := mapview.NewReconciler(zap.NewNop())
	good := station(uuid.New(), -8.28, -35.03, false, nil)
	nan := station(uuid.New(), math.NaN(), -35.03, false, nil)
	outOfRange := station(uuid.New(), 95.0, -35.03, false, nil)

	var diff mapview.Diff
	assert.NotPanics(t, func() {
		diff = rec.Reconcile(nil, []*domain.Station{good, nan, outOfRange}, domain.FuelFilterAll, false)
	})

	require.Len(t, diff.ToAdd, 1)
	assert.Equal(t, good.ID, diff.ToAdd[0].StationID)
}

func TestReconcile_RemovedStationDropsMarker(t *testing.T) {
	rec := mapview.NewReconciler(zap.NewNop())
	a := station(uuid.New(), -8.28, -35.03, false, nil)
	b := station(uuid.New(), -8.29, -35.04, false, nil)

	markers := map[uuid.UUID]mapview.Marker{}
	applyDiff(markers, rec.Reconcile(markers, []*domain.Station{a, b}, domain.FuelFilterAll, false))

	diff := rec.Reconcile(markers, []*domain.Station{a}, domain.FuelFilterAll, false)
	require.Len(t, diff.ToRemove, 1)
	assert.Equal(t, b.ID, diff.ToRemove[0])
}
