package datasource

import "context"

// ForecastSource defines the interface for a weather forecast provider
type ForecastSource interface {
	Name() string
	FetchForecast(ctx context.Context, location string, days int) (*ForecastResponse, error)
}
