// Package nominatim resolves coordinates to addresses through the public
// Nominatim API. Responses are cached in process because the service enforces
// an absolute usage policy of one request per second.
package nominatim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/muesli/gominatim"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/config"
	"github.com/Oliejik/T-No-Posto/internal/domain/repository"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
)

const reverseZoom = 18 // building-level detail

type Client struct {
	cache  *gocache.Cache
	logger *zap.Logger
}

func NewClient(cfg *config.GeocodeConfig, logger *zap.Logger) (repository.GeocodeRepository, error) {
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid nominatim server url %q: %w", cfg.BaseURL, err)
	}
	gominatim.SetServer(cfg.BaseURL)

	logger.Info("Nominatim geocoder configured", zap.String("base_url", cfg.BaseURL))

	return &Client{
		cache:  gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		logger: logger,
	}, nil
}

func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	// Five decimals is about a meter, well inside address resolution.
	key := fmt.Sprintf("revgeo:%.5f:%.5f", lat, lng)
	if cached, ok := c.cache.Get(key); ok {
		return cached.(string), nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	query := gominatim.ReverseQuery{
		Lat:  strconv.FormatFloat(lat, 'f', -1, 64),
		Lon:  strconv.FormatFloat(lng, 'f', -1, 64),
		Zoom: reverseZoom,
	}

	result, err := query.Get()
	if err != nil {
		c.logger.Warn("Reverse geocode request failed",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Error(err))
		return "", errors.ErrGeocodeError
	}
	if result == nil || result.DisplayName == "" {
		return "", errors.ErrGeocodeError
	}

	c.cache.Set(key, result.DisplayName, gocache.DefaultExpiration)
	return result.DisplayName, nil
}
