package errors

import "net/http"

var (
	ErrStationNotFound = New(
		"STATION_NOT_FOUND",
		"Station not found",
		http.StatusNotFound,
	)

	ErrProfileNotFound = New(
		"PROFILE_NOT_FOUND",
		"Profile not found",
		http.StatusNotFound,
	)

	ErrReportNotFound = New(
		"REPORT_NOT_FOUND",
		"Report not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrUnknownFuelType = New(
		"UNKNOWN_FUEL_TYPE",
		"Unknown fuel type",
		http.StatusBadRequest,
	)

	ErrInvalidPrice = New(
		"INVALID_PRICE",
		"Price must be greater than zero",
		http.StatusBadRequest,
	)

	ErrNoPriceData = New(
		"NO_PRICE_DATA",
		"Station has no price for the requested fuel",
		http.StatusNotFound,
	)

	ErrLocationUnavailable = New(
		"LOCATION_UNAVAILABLE",
		"Could not determine current position",
		http.StatusServiceUnavailable,
	)

	ErrInvalidAudience = New(
		"INVALID_AUDIENCE",
		"Invalid notification audience",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Insufficient permissions",
		http.StatusForbidden,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrGeocodeError = New(
		"GEOCODE_ERROR",
		"Reverse geocoding failed",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
