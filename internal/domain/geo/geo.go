package geo

import (
	"errors"
	"math"
)

// EarthRadiusMiles is the mean earth radius used for great-circle distances.
const EarthRadiusMiles = 3958.8

var ErrInvalidCoordinates = errors.New("invalid coordinates")

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	return Coordinates{Latitude: lat, Longitude: lng}, nil
}

// IsZero reports the 0,0 pair reference data uses for "unknown".
func (c Coordinates) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// Haversine returns the great-circle distance between a and b in miles.
func Haversine(a, b Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// clamp float error so asin stays defined
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMiles * math.Asin(math.Sqrt(h))
}

// DistanceMiles is Haversine rounded to whole miles.
func DistanceMiles(a, b Coordinates) int {
	return int(math.Round(Haversine(a, b)))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
