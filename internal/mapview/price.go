package mapview

import "github.com/Oliejik/T-No-Posto/internal/domain"

// SelectDisplayPrice picks the price shown on a station's marker.
//
// With a concrete fuel filter the station's record for that fuel wins, or
// nothing if the fuel was never reported there. With FuelFilterAll the
// cheapest known price wins; when several fuels tie the selection is
// value-only, the fuel identity of the minimum is not surfaced.
//
// ok is false when the station has no matching price at all.
func SelectDisplayPrice(station *domain.Station, filter domain.FuelType) (value float64, ok bool) {
	if station == nil || len(station.Prices) == 0 {
		return 0, false
	}

	if filter != domain.FuelFilterAll {
		record, found := station.Prices[filter]
		if !found {
			return 0, false
		}
		return record.Value, true
	}

	for _, record := range station.Prices {
		if !ok || record.Value < value {
			value = record.Value
			ok = true
		}
	}
	return value, ok
}
