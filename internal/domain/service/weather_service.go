package service

import (
	"context"

	"campground/internal/domain/entity"

	"github.com/paulmach/orb"
)

// WeatherService looks up current conditions at a position.
type WeatherService interface {
	Forecast(ctx context.Context, point orb.Point) (*entity.Weather, error)
}
