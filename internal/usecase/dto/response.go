package dto

import (
	"time"

	"github.com/Oliejik/T-No-Posto/internal/domain"
)

type PriceResponse struct {
	Value         float64   `json:"value"`
	UpdatedAt     time.Time `json:"updated_at"`
	UpdatedBy     string    `json:"updated_by"`
	Confirmations int       `json:"confirmations"`
}

type StationResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Brand       string                   `json:"brand"`
	Address     string                   `json:"address"`
	Coordinates domain.Coordinate        `json:"coordinates"`
	Prices      map[string]PriceResponse `json:"prices"`
	IsFavorite  bool                     `json:"is_favorite"`
	Distance    *float64                 `json:"distance,omitempty"`
}

type StationsResponse struct {
	Stations []StationResponse `json:"stations"`
}

type FuelTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type ProfileResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Reputation    int       `json:"reputation"`
	Contributions int       `json:"contributions"`
	Status        string    `json:"status"`
	JoinedAt      time.Time `json:"joined_at"`
}

type ReportResponse struct {
	ID          string    `json:"id"`
	StationID   string    `json:"station_id"`
	StationName string    `json:"station_name"`
	ReportedBy  string    `json:"reported_by"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type NotificationResponse struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	Audience string     `json:"audience"`
	Reach    int        `json:"reach"`
	SentAt   *time.Time `json:"sent_at,omitempty"`
}

type ReachResponse struct {
	Audience string `json:"audience"`
	Reach    int    `json:"reach"`
}

// ConvertStation maps a domain station onto the API shape. Map keys are the
// fuel slugs.
func ConvertStation(s *domain.Station) StationResponse {
	prices := make(map[string]PriceResponse, len(s.Prices))
	for fuel, record := range s.Prices {
		prices[string(fuel)] = PriceResponse{
			Value:         record.Value,
			UpdatedAt:     record.UpdatedAt,
			UpdatedBy:     record.UpdatedBy.String(),
			Confirmations: record.Confirmations,
		}
	}

	return StationResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Brand:       string(s.Brand),
		Address:     s.Address,
		Coordinates: s.Coordinates,
		Prices:      prices,
		IsFavorite:  s.IsFavorite,
		Distance:    s.Distance,
	}
}

func ConvertStations(stations []*domain.Station) []StationResponse {
	out := make([]StationResponse, 0, len(stations))
	for _, s := range stations {
		out = append(out, ConvertStation(s))
	}
	return out
}

func ConvertProfile(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Email:         p.Email,
		Role:          string(p.Role),
		Reputation:    p.Reputation,
		Contributions: p.Contributions,
		Status:        string(p.Status),
		JoinedAt:      p.JoinedAt,
	}
}

func ConvertReport(r *domain.Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID.String(),
		StationID:   r.StationID.String(),
		StationName: r.StationName,
		ReportedBy:  r.ReportedBy.String(),
		Reason:      r.Reason,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func ConvertNotification(n *domain.AppNotification) NotificationResponse {
	return NotificationResponse{
		ID:       n.ID.String(),
		Title:    n.Title,
		Message:  n.Message,
		Audience: string(n.Audience),
		Reach:    n.Reach,
		SentAt:   n.SentAt,
	}
}
