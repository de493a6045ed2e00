package weather

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"campground/config"
	deliverycontext "campground/internal/delivery/context"
	"campground/internal/domain/entity"
	"campground/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"golang.org/x/sync/singleflight"
)

// cacheZoom groups nearby campgrounds into one ~10km tile so they share a forecast.
const cacheZoom maptile.Zoom = 12

type cacheEntry struct {
	weather   *entity.Weather
	expiresAt time.Time
}

// forecaster is the upstream lookup behind the cache
type forecaster interface {
	Forecast(ctx context.Context, point orb.Point) (*entity.Weather, error)
}

// cachedService reuses forecasts per map tile for the configured TTL
type cachedService struct {
	upstream forecaster
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger

	group   singleflight.Group
	cache   map[maptile.Tile]cacheEntry
	cacheMu sync.RWMutex
}

func newCachedService(upstream forecaster, ttl time.Duration, logger *slog.Logger) *cachedService {
	return &cachedService{
		upstream: upstream,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
		cache:    make(map[maptile.Tile]cacheEntry),
	}
}

// Forecast returns the cached forecast for the tile containing point, fetching it on a miss.
// Concurrent misses for the same tile share one upstream call.
func (s *cachedService) Forecast(ctx context.Context, point orb.Point) (*entity.Weather, error) {
	tile := maptile.At(point, cacheZoom)

	s.cacheMu.RLock()
	entry, ok := s.cache[tile]
	s.cacheMu.RUnlock()
	if ok && s.now().Before(entry.expiresAt) {
		return entry.weather, nil
	}

	key := strconv.FormatUint(uint64(tile.Z), 10) + "/" + strconv.FormatUint(uint64(tile.X), 10) + "/" + strconv.FormatUint(uint64(tile.Y), 10)
	// The shared lookup outlives any single caller; the client timeout bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	results := s.group.DoChan(key, func() (any, error) {
		weather, err := s.upstream.Forecast(fetchCtx, point)
		if err != nil {
			return nil, err
		}

		s.cacheMu.Lock()
		s.cache[tile] = cacheEntry{weather: weather, expiresAt: s.now().Add(s.ttl)}
		s.evictExpiredLocked()
		s.cacheMu.Unlock()

		return weather, nil
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result = <-results:
	}
	if result.Err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("[Weather] Forecast lookup failed",
			slog.Float64("latitude", point.Lat()),
			slog.Float64("longitude", point.Lon()),
			slog.Any("error", result.Err),
		)

		return nil, result.Err
	}

	return result.Val.(*entity.Weather), nil
}

func (s *cachedService) evictExpiredLocked() {
	now := s.now()
	for tile, entry := range s.cache {
		if now.After(entry.expiresAt) {
			delete(s.cache, tile)
		}
	}
}

// NewWeatherService creates the configured WeatherService, or nil when lookups are disabled
func NewWeatherService(cfg *config.Config, logger *slog.Logger) service.WeatherService {
	if cfg.Weather == nil || !cfg.Weather.Enabled {
		logger.Info("Weather lookups disabled")

		return nil
	}

	client := newOpenMeteoClient(cfg.Weather.BaseURL, cfg.Weather.Timeout)

	return newCachedService(client, cfg.Weather.CacheTTL, logger)
}
