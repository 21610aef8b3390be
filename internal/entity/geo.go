package entity

import (
	"fmt"
	"math"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c LatLng) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// IsZero reports whether the coordinate is the unset zero value.
func (c LatLng) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// DistanceMeters returns the haversine distance between two coordinates.
func (c LatLng) DistanceMeters(o LatLng) float64 {
	const earthRadius = 6371000.0
	la1 := c.Lat * math.Pi / 180
	la2 := o.Lat * math.Pi / 180
	dLat := (o.Lat - c.Lat) * math.Pi / 180
	dLng := (o.Lng - c.Lng) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(la1)*math.Cos(la2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadius * math.Asin(math.Sqrt(a))
}

// WithinDegrees reports whether both axes differ by less than eps degrees.
// Used by session consolidation, where the threshold is policy, not precision.
func (c LatLng) WithinDegrees(o LatLng, eps float64) bool {
	return math.Abs(c.Lat-o.Lat) < eps && math.Abs(c.Lng-o.Lng) < eps
}
