package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatLngDistanceMeters(t *testing.T) {
	seattle := LatLng{Lat: 47.6062, Lng: -122.3321}
	portland := LatLng{Lat: 45.5152, Lng: -122.6784}

	d := seattle.DistanceMeters(portland)
	assert.InDelta(t, 233_000, d, 5_000, "Seattle to Portland is about 233km")
	assert.Zero(t, seattle.DistanceMeters(seattle))
}

func TestLatLngWithinDegrees(t *testing.T) {
	a := LatLng{Lat: 47.60000, Lng: -122.30000}

	assert.True(t, a.WithinDegrees(LatLng{Lat: 47.60010, Lng: -122.30010}, 0.0005))
	assert.False(t, a.WithinDegrees(LatLng{Lat: 47.60100, Lng: -122.30000}, 0.0005),
		"one axis out of range is enough to reject")
	assert.False(t, a.WithinDegrees(LatLng{Lat: 47.60000, Lng: -122.30100}, 0.0005))
}

func TestLatLngIsZero(t *testing.T) {
	assert.True(t, LatLng{}.IsZero())
	assert.False(t, LatLng{Lat: 0.001}.IsZero())
}

func TestUnionStrings(t *testing.T) {
	item := &ProcessedItem{Tags: []string{"a", "b"}}
	item.AddTags("b", "", "c", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, item.Tags)
}
