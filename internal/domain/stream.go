package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names shared between the API and the worker binary.
const (
	StreamPriceUpdated = "stream:price:updated"
)

// PriceUpdatedEvent is published whenever a driver submits a price.
type PriceUpdatedEvent struct {
	StationID uuid.UUID `json:"station_id"`
	FuelType  FuelType  `json:"fuel_type"`
	Value     float64   `json:"value"`
	UpdatedBy uuid.UUID `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StreamMessage is a raw entry read from a Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
