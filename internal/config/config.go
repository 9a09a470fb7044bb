package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Geocode  GeocodeConfig
	Map      MapConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StationsCacheTTL time.Duration
	StatsCacheTTL    time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

type GeocodeConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	CacheTTL       time.Duration
}

// MapConfig drives the live map sessions: where the viewport sits before a
// fix arrives, how long a locate request may stay outstanding, and the
// minimum movement that justifies re-centering.
type MapConfig struct {
	FallbackLat     float64
	FallbackLng     float64
	Zoom            int
	LocateTimeout   time.Duration
	RecenterMinKm   float64
	DefaultRadiusKm float64
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StationsCacheTTL: time.Duration(viper.GetInt("STATIONS_CACHE_TTL")) * time.Second,
			StatsCacheTTL:    time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
		},
		Geocode: GeocodeConfig{
			BaseURL:        viper.GetString("NOMINATIM_URL"),
			RequestTimeout: time.Duration(viper.GetInt("NOMINATIM_TIMEOUT")) * time.Second,
			CacheTTL:       time.Duration(viper.GetInt("NOMINATIM_CACHE_TTL")) * time.Second,
		},
		Map: MapConfig{
			FallbackLat:     viper.GetFloat64("MAP_FALLBACK_LAT"),
			FallbackLng:     viper.GetFloat64("MAP_FALLBACK_LNG"),
			Zoom:            viper.GetInt("MAP_ZOOM"),
			LocateTimeout:   time.Duration(viper.GetInt("MAP_LOCATE_TIMEOUT")) * time.Second,
			RecenterMinKm:   viper.GetFloat64("MAP_RECENTER_MIN_KM"),
			DefaultRadiusKm: viper.GetFloat64("MAP_DEFAULT_RADIUS_KM"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Cache.StationsCacheTTL == 0 {
		cfg.Cache.StationsCacheTTL = 60 * time.Second
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 5 * time.Minute
	}
	if cfg.Geocode.BaseURL == "" {
		cfg.Geocode.BaseURL = "https://nominatim.openstreetmap.org/"
	}
	if cfg.Geocode.RequestTimeout == 0 {
		cfg.Geocode.RequestTimeout = 10 * time.Second
	}
	if cfg.Geocode.CacheTTL == 0 {
		cfg.Geocode.CacheTTL = 10 * time.Minute
	}
	// Recife metro area, same default the mobile client ships with.
	if cfg.Map.FallbackLat == 0 && cfg.Map.FallbackLng == 0 {
		cfg.Map.FallbackLat = -8.285816
		cfg.Map.FallbackLng = -35.034964
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 15
	}
	if cfg.Map.LocateTimeout == 0 {
		cfg.Map.LocateTimeout = 10 * time.Second
	}
	if cfg.Map.RecenterMinKm == 0 {
		cfg.Map.RecenterMinKm = 0.05
	}
	if cfg.Map.DefaultRadiusKm == 0 {
		cfg.Map.DefaultRadiusKm = 10
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "price-feed-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
