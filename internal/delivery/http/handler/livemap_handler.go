package handler

import (
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/config"
	"github.com/Oliejik/T-No-Posto/internal/delivery/http/middleware"
	"github.com/Oliejik/T-No-Posto/internal/domain"
	"github.com/Oliejik/T-No-Posto/internal/mapview"
	"github.com/Oliejik/T-No-Posto/internal/usecase/dto"
)

// LiveMapHandler serves the WebSocket live map. Each connection owns a
// mapview.Session; the client sends intents (filter, position, locate,
// click) and receives marker operations back.
type LiveMapHandler struct {
	source mapview.StationSource
	cfg    config.MapConfig
	logger *zap.Logger
}

func NewLiveMapHandler(source mapview.StationSource, cfg config.MapConfig, logger *zap.Logger) *LiveMapHandler {
	return &LiveMapHandler{
		source: source,
		cfg:    cfg,
		logger: logger,
	}
}

// Upgrade rejects plain HTTP requests on the WebSocket route.
func (h *LiveMapHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		// Identity is resolved before the upgrade; the socket handler only
		// sees Locals.
		c.Locals(middleware.LocalsUserID, middleware.UserID(c))
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

type clientMessage struct {
	Type      string  `json:"type"`
	Fuel      string  `json:"fuel,omitempty"`
	Enabled   bool    `json:"enabled,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
	StationID string  `json:"station_id,omitempty"`
}

type serverMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// wsSurface renders marker operations as JSON frames. The mutex serializes
// writers: the session, the locate goroutine and error replies all share the
// connection.
type wsSurface struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	logger *zap.Logger
}

func (s *wsSurface) send(msgType string, payload interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.WriteJSON(serverMessage{Type: msgType, Payload: payload}); err != nil {
		s.logger.Debug("Failed to write frame", zap.String("type", msgType), zap.Error(err))
	}
}

func (s *wsSurface) AddMarker(m mapview.Marker)    { s.send("marker_add", m) }
func (s *wsSurface) UpdateMarker(m mapview.Marker) { s.send("marker_update", m) }

func (s *wsSurface) RemoveMarker(stationID uuid.UUID) {
	s.send("marker_remove", fiber.Map{"station_id": stationID.String()})
}

func (s *wsSurface) PanTo(c domain.Coordinate, zoom int) {
	s.send("center", fiber.Map{"lat": c.Lat, "lng": c.Lng, "zoom": zoom})
}

// pushProvider turns client "position" frames into a LocationProvider. A
// locate blocks until the next pushed position or the deadline.
type pushProvider struct {
	positions chan domain.Coordinate
}

func newPushProvider() *pushProvider {
	return &pushProvider{positions: make(chan domain.Coordinate, 1)}
}

func (p *pushProvider) push(pos domain.Coordinate) {
	select {
	case p.positions <- pos:
	default:
		// Drop when a fix is already pending; the next locate takes the
		// freshest position anyway.
	}
}

func (p *pushProvider) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	select {
	case pos := <-p.positions:
		return pos, nil
	case <-ctx.Done():
		return domain.Coordinate{}, ctx.Err()
	}
}

// Handle godoc
// @Summary Live map WebSocket
// @Description Streams marker add/update/remove and viewport centering for one map session
// @Tags map
// @Router /ws/map [get]
func (h *LiveMapHandler) Handle() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals(middleware.LocalsUserID).(uuid.UUID)

		surface := &wsSurface{conn: conn, logger: h.logger}
		provider := newPushProvider()

		fallback := domain.Coordinate{Lat: h.cfg.FallbackLat, Lng: h.cfg.FallbackLng}
		viewport := mapview.NewViewportController(
			surface, provider, fallback, h.cfg.Zoom,
			h.cfg.LocateTimeout, h.cfg.RecenterMinKm, h.logger)
		session := mapview.NewSession(h.source, surface, viewport, userID, h.logger)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var wg sync.WaitGroup
		defer wg.Wait()

		h.logger.Info("Map session opened", zap.String("user_id", userID.String()))

		// Initial render around the fallback position.
		surface.PanTo(fallback, h.cfg.Zoom)
		if err := session.Refresh(ctx); err != nil {
			surface.send("error", fiber.Map{"message": "failed to load stations"})
		}

		for {
			var msg clientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				h.logger.Info("Map session closed", zap.String("user_id", userID.String()))
				return
			}

			switch msg.Type {
			case "set_filter":
				filter := domain.FuelType(msg.Fuel)
				if filter != domain.FuelFilterAll && !filter.Valid() {
					surface.send("error", fiber.Map{"message": "unknown fuel type"})
					continue
				}
				session.SetFilter(filter)

			case "set_favorites":
				session.SetFavoritesOnly(msg.Enabled)

			case "position":
				provider.push(domain.Coordinate{Lat: msg.Lat, Lng: msg.Lng})
				session.SetPosition(domain.Coordinate{Lat: msg.Lat, Lng: msg.Lng})

			case "locate":
				// Locate blocks on the provider, so it runs off the read
				// loop; the client keeps pushing positions meanwhile.
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, err := session.Locate(ctx); err != nil {
						surface.send("location_failed", fiber.Map{
							"lat": viewport.Position().Lat,
							"lng": viewport.Position().Lng,
						})
						return
					}
					if err := session.Refresh(ctx); err != nil {
						surface.send("error", fiber.Map{"message": "failed to load stations"})
					}
				}()

			case "refresh":
				// Overlapping refreshes are fine: stale results are
				// discarded by the session's sequence gate.
				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := session.Refresh(ctx); err != nil {
						surface.send("error", fiber.Map{"message": "failed to load stations"})
					}
				}()

			case "click":
				stationID, err := uuid.Parse(msg.StationID)
				if err != nil {
					surface.send("error", fiber.Map{"message": "invalid station id"})
					continue
				}
				station, ok := session.ResolveStation(stationID)
				if !ok {
					surface.send("error", fiber.Map{"message": "station not on map"})
					continue
				}
				surface.send("station", dto.ConvertStation(station))

			default:
				surface.send("error", fiber.Map{"message": "unknown message type"})
			}
		}
	})
}
