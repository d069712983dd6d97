package service

import (
	"context"

	"silvacollect/entities"
)

// WeatherService serves the dashboard reading. It shares the app's
// cache-first posture: a fresh snapshot is returned without a network call,
// and when every provider fails a stale snapshot beats no snapshot.
type WeatherService interface {
	Current(ctx context.Context) (*entities.WeatherSnapshot, error)
}
