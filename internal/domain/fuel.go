package domain

import (
	"time"

	"github.com/google/uuid"
)

// FuelType is the closed set of products sold at stations. The values are
// the canonical slugs stored in the fuel_types table.
type FuelType string

const (
	FuelGasolinaComum     FuelType = "gasolina_comum"
	FuelGasolinaAditivada FuelType = "gasolina_aditivada"
	FuelEtanol            FuelType = "etanol"
	FuelDieselS10         FuelType = "diesel_s10"
	FuelDieselS500        FuelType = "diesel_s500"
	FuelGNV               FuelType = "gnv"
	FuelArla32            FuelType = "arla_32"
)

// FuelFilterAll is the sentinel filter meaning "cheapest of any fuel".
const FuelFilterAll FuelType = ""

var fuelDisplayNames = map[FuelType]string{
	FuelGasolinaComum:     "Gasolina Comum",
	FuelGasolinaAditivada: "Gasolina Aditivada",
	FuelEtanol:            "Etanol",
	FuelDieselS10:         "Diesel S10",
	FuelDieselS500:        "Diesel S500",
	FuelGNV:               "GNV",
	FuelArla32:            "Arla 32",
}

// AllFuelTypes returns the taxonomy in display order.
func AllFuelTypes() []FuelType {
	return []FuelType{
		FuelGasolinaComum,
		FuelGasolinaAditivada,
		FuelEtanol,
		FuelDieselS10,
		FuelDieselS500,
		FuelGNV,
		FuelArla32,
	}
}

func (f FuelType) Valid() bool {
	_, ok := fuelDisplayNames[f]
	return ok
}

// DisplayName returns the Portuguese label shown in clients.
func (f FuelType) DisplayName() string {
	if name, ok := fuelDisplayNames[f]; ok {
		return name
	}
	return string(f)
}

// FuelTypeRecord is a row of the fuel_types table. The taxonomy is closed at
// the domain level but persisted so admins can adjust labels.
type FuelTypeRecord struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        FuelType  `json:"name" db:"name"`
	DisplayName string    `json:"display_name" db:"display_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
