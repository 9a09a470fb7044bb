package dto

import "github.com/google/uuid"

// NearbyStationsRequest - query for stations around a point.
type NearbyStationsRequest struct {
	Lat      float64 `json:"lat" query:"lat" validate:"min=-90,max=90"`
	Lng      float64 `json:"lng" query:"lng" validate:"min=-180,max=180"`
	RadiusKm float64 `json:"radius_km" query:"radius_km" validate:"omitempty,min=0.1,max=100"`
	Fuel     string  `json:"fuel" query:"fuel" validate:"omitempty,oneof=gasolina_comum gasolina_aditivada etanol diesel_s10 diesel_s500 gnv arla_32"`
	Limit    int     `json:"limit" query:"limit" validate:"omitempty,min=1,max=200"`
}

// SubmitPriceRequest - one crowdsourced price report.
type SubmitPriceRequest struct {
	Fuel  string  `json:"fuel" validate:"required,oneof=gasolina_comum gasolina_aditivada etanol diesel_s10 diesel_s500 gnv arla_32"`
	Value float64 `json:"value" validate:"required,gt=0"`
}

type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=80"`
}

type CreateReportRequest struct {
	StationID uuid.UUID `json:"station_id" validate:"required"`
	Reason    string    `json:"reason" validate:"required,min=5,max=500"`
}

type ModerateReportRequest struct {
	Status string `json:"status" validate:"required,oneof=resolved dismissed"`
}

// SaveStationRequest - admin create/update. Address may be empty: the
// handler fills it by reverse geocoding the pin position.
type SaveStationRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=120"`
	Brand   string  `json:"brand" validate:"required,oneof=petrobras shell ipiranga ale bandeira_branca"`
	Address string  `json:"address" validate:"omitempty,max=300"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active banned"`
}

type SendNotificationRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=120"`
	Message  string `json:"message" validate:"required,min=2,max=1000"`
	Audience string `json:"audience" validate:"required,oneof=all active inactive"`
}

type SaveFuelTypeRequest struct {
	Name        string `json:"name" validate:"required,oneof=gasolina_comum gasolina_aditivada etanol diesel_s10 diesel_s500 gnv arla_32"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=60"`
}

type ListRequest struct {
	Limit  int `json:"limit" query:"limit" validate:"omitempty,min=1,max=200"`
	Offset int `json:"offset" query:"offset" validate:"omitempty,min=0"`
}
