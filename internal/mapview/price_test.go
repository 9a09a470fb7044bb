package mapview_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/mapview"
)

func TestSelectDisplayPrice_AllFuelsPicksMinimum(t *testing.T) {
	st := station(uuid.New(), -8.28, -35.03, false, prices(map[domain.FuelType]float64{
		domain.FuelGasolinaComum: 5.89,
		domain.FuelEtanol:        3.49,
	}))

	value, ok := mapview.SelectDisplayPrice(st, domain.FuelFilterAll)

	assert.True(t, ok)
	assert.Equal(t, 3.49, value)
}

func TestSelectDisplayPrice_ExactFuelMatch(t *testing.T) {
	st := station(uuid.New(), -8.28, -35.03, false, prices(map[domain.FuelType]float64{
		domain.FuelGasolinaComum: 5.89,
		domain.FuelDieselS10:     6.10,
	}))

	value, ok := mapview.SelectDisplayPrice(st, domain.FuelDieselS10)

	assert.True(t, ok)
	assert.Equal(t, 6.10, value)
}

func TestSelectDisplayPrice_MissingFuelIsNoPrice(t *testing.T) {
	// Other fuels being present must not leak into a specific filter.
	st := station(uuid.New(), -8.28, -35.03, false, prices(map[domain.FuelType]float64{
		domain.FuelEtanol: 3.49,
	}))

	_, ok := mapview.SelectDisplayPrice(st, domain.FuelGasolinaComum)

	assert.False(t, ok)
}

func TestSelectDisplayPrice_NoPricesAtAll(t *testing.T) {
	st := station(uuid.New(), -8.28, -35.03, false, nil)

	_, ok := mapview.SelectDisplayPrice(st, domain.FuelFilterAll)
	assert.False(t, ok)

	_, ok = mapview.SelectDisplayPrice(st, domain.FuelEtanol)
	assert.False(t, ok)
}

func TestSelectDisplayPrice_TieIsValueOnly(t *testing.T) {
	st := station(uuid.New(), -8.28, -35.03, false, prices(map[domain.FuelType]float64{
		domain.FuelEtanol:    3.49,
		domain.FuelDieselS10: 3.49,
	}))

	value, ok := mapview.SelectDisplayPrice(st, domain.FuelFilterAll)

	assert.True(t, ok)
	assert.Equal(t, 3.49, value)
}
