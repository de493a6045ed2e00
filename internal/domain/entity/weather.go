package entity

import "time"

// Weather is a current-conditions snapshot shown next to a campground.
type Weather struct {
	Temperature   float64   `json:"temperature"`    // Degrees Celsius.
	WindSpeed     float64   `json:"wind_speed"`     // km/h.
	WindDirection float64   `json:"wind_direction"` // Degrees.
	WeatherCode   int       `json:"weather_code"`   // WMO weather interpretation code.
	Summary       string    `json:"summary"`
	ObservedAt    time.Time `json:"observed_at"`
}
