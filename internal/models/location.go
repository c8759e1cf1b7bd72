package models

// GeoPoint is a pickup or dropoff place as captured from the client.
type GeoPoint struct {
	Address string  `json:"address" bson:"address"`
	Lat     float64 `json:"lat" bson:"lat"`
	Lng     float64 `json:"lng" bson:"lng"`
}
