package domain

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the station's flag. "bandeira_branca" means unbranded.
type Brand string

const (
	BrandPetrobras      Brand = "petrobras"
	BrandShell          Brand = "shell"
	BrandIpiranga       Brand = "ipiranga"
	BrandAle            Brand = "ale"
	BrandBandeiraBranca Brand = "bandeira_branca"
)

func (b Brand) Valid() bool {
	switch b {
	case BrandPetrobras, BrandShell, BrandIpiranga, BrandAle, BrandBandeiraBranca:
		return true
	}
	return false
}

// PriceRecord is the latest crowdsourced price for one fuel at one station.
// Each submission overwrites the record wholesale; no history is kept.
type PriceRecord struct {
	Value         float64   `json:"value" db:"value"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
	UpdatedBy     uuid.UUID `json:"updated_by" db:"updated_by"`
	Confirmations int       `json:"confirmations" db:"confirmations"`
}

// Station is a fuel retail location. Prices is partial: only fuels that have
// at least one report are present. Distance is derived from the caller's
// position at read time and is never persisted; IsFavorite is scoped to the
// requesting user.
type Station struct {
	ID          uuid.UUID                `json:"id" db:"id"`
	Name        string                   `json:"name" db:"name"`
	Brand       Brand                    `json:"brand" db:"brand"`
	Address     string                   `json:"address" db:"address"`
	Coordinates Coordinate               `json:"coordinates"`
	Prices      map[FuelType]PriceRecord `json:"prices"`
	IsFavorite  bool                     `json:"is_favorite"`
	Distance    *float64                 `json:"distance,omitempty"`
	CreatedAt   time.Time                `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at" db:"updated_at"`
}
