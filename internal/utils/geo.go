package utils

import "fmt"

// KmPerDegree approximates kilometers per degree of latitude. The matching
// queries convert a kilometer radius into a flat lat/lng range with it, giving
// a bounding box rather than a true circle.
const KmPerDegree = 111.32

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox is a rectangular lat/lng range used as a cheap "nearby" proxy.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoxAround builds the box of radiusKm around a point. The same degree delta
// is applied to both axes independently; no great-circle correction.
func BoxAround(lat, lng, radiusKm float64) BoundingBox {
	delta := radiusKm / KmPerDegree
	return BoundingBox{
		MinLat: lat - delta,
		MaxLat: lat + delta,
		MinLng: lng - delta,
		MaxLng: lng + delta,
	}
}

// Contains reports whether the point falls inside the box, bounds inclusive.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

func IsValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}
