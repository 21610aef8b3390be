package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/entity"
)

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want entity.LatLng
		ok   bool
	}{
		{"plain", "37.7749,-122.4194", entity.LatLng{Lat: 37.7749, Lng: -122.4194}, true},
		{"spaced", " 10.5 , 20.25 ", entity.LatLng{Lat: 10.5, Lng: 20.25}, true},
		{"integers", "-45,170", entity.LatLng{Lat: -45, Lng: 170}, true},
		{"lat out of range", "91,0", entity.LatLng{}, false},
		{"lng out of range", "0,181", entity.LatLng{}, false},
		{"not a pair", "37.7749", entity.LatLng{}, false},
		{"words", "Foo Cafe", entity.LatLng{}, false},
		{"empty", "", entity.LatLng{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLatLng(tt.s)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseISO6709(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want entity.LatLng
		ok   bool
	}{
		{"quicktime track", "+37.7749-122.4194+010.000/", entity.LatLng{Lat: 37.7749, Lng: -122.4194}, true},
		{"positive pair", "+48.8566+002.3522/", entity.LatLng{Lat: 48.8566, Lng: 2.3522}, true},
		{"no signs", "37.7749 -122.4194", entity.LatLng{}, false},
		{"out of range", "+91.0+000.0/", entity.LatLng{}, false},
		{"garbage", "not a coordinate", entity.LatLng{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseISO6709(tt.s)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResolveLocation_Cascade(t *testing.T) {
	now := mustTime(t, "2026-01-05T12:00:00Z")
	logger := discardLogger()
	liveMax := 5 * time.Minute
	deviceCoord := &entity.LatLng{Lat: 47.61, Lng: -122.33}
	device := &fakeDevice{current: func() (*entity.LatLng, error) { return deviceCoord, nil }}

	freshCapture := func() *entity.CaptureInput {
		return &entity.CaptureInput{CreatedAt: now.Add(-time.Minute)}
	}

	t.Run("explicit place wins", func(t *testing.T) {
		item := &entity.ProcessedItem{
			Place: &entity.PlaceContext{
				Name:       "Foo Cafe",
				PlaceID:    "f-1",
				Coordinate: &entity.LatLng{Lat: 1, Lng: 2},
				UserPinned: true,
			},
		}
		loc := resolveLocation(context.Background(), logger, locationDeps{device: device},
			item, freshCapture(), nil, liveMax, now)

		assert.Equal(t, "Foo Cafe", loc.Name)
		assert.Equal(t, "f-1", loc.PlaceID)
		assert.True(t, loc.UserOverride)
	})

	t.Run("home placeholder is demoted", func(t *testing.T) {
		item := &entity.ProcessedItem{
			Place: &entity.PlaceContext{Name: entity.HomeLabel, Coordinate: &entity.LatLng{Lat: 1, Lng: 2}},
		}
		loc := resolveLocation(context.Background(), logger, locationDeps{device: device},
			item, freshCapture(), nil, liveMax, now)

		require.NotNil(t, loc.Coord)
		assert.Equal(t, *deviceCoord, *loc.Coord, "device location refines the generic home")
		assert.False(t, loc.UserOverride)
	})

	t.Run("descriptor coordinate beats the device", func(t *testing.T) {
		c := freshCapture()
		c.Descriptor = &entity.ItemDescriptor{
			Coordinate:   &entity.LatLng{Lat: 35.0, Lng: 139.0},
			LocationName: "Shibuya Crossing",
		}
		loc := resolveLocation(context.Background(), logger, locationDeps{device: device},
			&entity.ProcessedItem{}, c, nil, liveMax, now)

		require.NotNil(t, loc.Coord)
		assert.Equal(t, 35.0, loc.Coord.Lat)
		assert.True(t, loc.UserOverride, "an explicit location name is a user override")
	})

	t.Run("descriptor location name parsed as lat,lon", func(t *testing.T) {
		c := freshCapture()
		c.Descriptor = &entity.ItemDescriptor{LocationName: "12.5,99.25"}
		loc := resolveLocation(context.Background(), logger, locationDeps{device: device},
			&entity.ProcessedItem{}, c, nil, liveMax, now)

		require.NotNil(t, loc.Coord)
		assert.Equal(t, entity.LatLng{Lat: 12.5, Lng: 99.25}, *loc.Coord)
	})

	t.Run("stale capture never adopts live GPS", func(t *testing.T) {
		c := &entity.CaptureInput{CreatedAt: now.Add(-2 * time.Hour)}
		loc := resolveLocation(context.Background(), logger, locationDeps{device: device},
			&entity.ProcessedItem{}, c, nil, liveMax, now)

		assert.Nil(t, loc.Coord)
	})

	t.Run("image EXIF GPS", func(t *testing.T) {
		gps := &entity.LatLng{Lat: 51.5, Lng: -0.12}
		media := &fakeMedia{imageGPS: func([]byte) (*entity.LatLng, error) { return gps, nil }}
		c := &entity.CaptureInput{
			CreatedAt: now.Add(-time.Hour),
			InputType: string(constants.InputImage),
			Payload:   []byte{0xff, 0xd8},
		}
		loc := resolveLocation(context.Background(), logger, locationDeps{media: media},
			&entity.ProcessedItem{}, c, nil, liveMax, now)

		require.NotNil(t, loc.Coord)
		assert.Equal(t, *gps, *loc.Coord)
	})

	t.Run("video metadata GPS", func(t *testing.T) {
		gps := &entity.LatLng{Lat: 40.4, Lng: -3.7}
		media := &fakeMedia{videoGPS: func([]byte) (*entity.LatLng, error) { return gps, nil }}
		c := &entity.CaptureInput{
			CreatedAt: now.Add(-time.Hour),
			InputType: string(constants.InputMedia),
			Payload:   []byte{0x00},
		}
		loc := resolveLocation(context.Background(), logger, locationDeps{media: media},
			&entity.ProcessedItem{}, c, nil, liveMax, now)

		require.NotNil(t, loc.Coord)
		assert.Equal(t, *gps, *loc.Coord)
	})

	t.Run("QR url payload is promoted", func(t *testing.T) {
		media := &fakeMedia{decodeQR: func([]byte) (string, error) { return "https://example.com/menu", nil }}
		c := &entity.CaptureInput{
			CreatedAt: now.Add(-time.Hour),
			InputType: string(constants.InputQRCode),
			Payload:   []byte{0x01},
		}
		loc := resolveLocation(context.Background(), logger, locationDeps{media: media},
			&entity.ProcessedItem{}, c, nil, liveMax, now)

		assert.Equal(t, "https://example.com/menu", loc.PromotedURL)
		assert.Equal(t, "https://example.com/menu", loc.QRPayload)
	})

	t.Run("QR geo payload yields a coordinate", func(t *testing.T) {
		media := &fakeMedia{decodeQR: func([]byte) (string, error) { return "geo:12,34", nil }}
		c := &entity.CaptureInput{
			CreatedAt: now.Add(-time.Hour),
			InputType: string(constants.InputQRCode),
			Payload:   []byte{0x01},
		}
		loc := resolveLocation(context.Background(), logger, locationDeps{media: media},
			&entity.ProcessedItem{}, c, nil, liveMax, now)

		require.NotNil(t, loc.Coord)
		assert.Equal(t, entity.LatLng{Lat: 12, Lng: 34}, *loc.Coord)
	})

	t.Run("session coordinate is the last resort", func(t *testing.T) {
		s := &entity.Session{
			SessionID:    "s-1",
			Coordinate:   &entity.LatLng{Lat: 59.9, Lng: 10.75},
			LocationName: "Oslo Opera House",
		}
		c := &entity.CaptureInput{CreatedAt: now.Add(-time.Hour)}
		loc := resolveLocation(context.Background(), logger, locationDeps{},
			&entity.ProcessedItem{}, c, s, liveMax, now)

		require.NotNil(t, loc.Coord)
		assert.Equal(t, "Oslo Opera House", loc.Name)
		assert.True(t, loc.UserOverride)
	})

	t.Run("nothing resolves to nothing", func(t *testing.T) {
		c := &entity.CaptureInput{CreatedAt: now.Add(-time.Hour)}
		loc := resolveLocation(context.Background(), logger, locationDeps{},
			&entity.ProcessedItem{}, c, nil, liveMax, now)

		assert.Equal(t, ResolvedLocation{}, loc)
	})
}
