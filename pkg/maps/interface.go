package maps

import "context"

// DistanceProvider is the one external dependency of quote calculation: an
// opaque service that turns a coordinate pair into road distance and travel
// time.
type DistanceProvider interface {
	CalculateDistance(ctx context.Context, req *DistanceRequest) (*DistanceResult, error)
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DistanceRequest struct {
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
	Mode        string   `json:"mode"` // driving, walking, bicycling, transit
}

type DistanceResult struct {
	DistanceKm   float64 `json:"distance_km"`
	DurationText string  `json:"duration_text"`
	DurationSecs int     `json:"duration_secs"`
}
