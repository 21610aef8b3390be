package providers

import (
	"context"

	"github.com/capturedesk/capturedesk/internal/entity"
)

// The capability interfaces below are the only way the pipeline reaches
// the outside world. Every one of them is async, unreliable, and allowed
// to fail independently: a nil result with a nil error means "nothing
// found", and any error is converted to absence-of-result at the
// orchestrator boundary.

// LinkMetadata resolves a URL to page metadata.
type LinkMetadata interface {
	Resolve(ctx context.Context, url string) (*entity.LinkResult, error)
}

// PlaceLookup resolves place identities. The pipeline chains these:
// ByID when a place id hint exists, Nearby on a bare coordinate, ByQuery
// as the reverse-geocode style fallback.
type PlaceLookup interface {
	ByID(ctx context.Context, placeID string) (*entity.PlaceResult, error)
	Nearby(ctx context.Context, coord entity.LatLng, limit int) (*entity.PlaceResult, error)
	ByQuery(ctx context.Context, query string, coord *entity.LatLng) (*entity.PlaceResult, error)
}

// WebSearch runs a general web search, optionally location-biased.
type WebSearch interface {
	Search(ctx context.Context, query string, coord *entity.LatLng) (*entity.WebSearchResult, error)
}

// Weather reports current conditions at a coordinate.
type Weather interface {
	Current(ctx context.Context, coord entity.LatLng) (*entity.WeatherContext, error)
}

// Activity reports the device's current physical activity.
type Activity interface {
	Current(ctx context.Context) (*entity.ActivityContext, error)
}

// DeviceLocation reports the device's live position. The pipeline only
// consults it for captures younger than the freshness window.
type DeviceLocation interface {
	Current(ctx context.Context) (*entity.LatLng, error)
}

// MediaProbe extracts signals from binary payloads. The underlying
// detection (EXIF decoding, video metadata tracks, barcode recognition)
// is host-platform work and is injected, never implemented here.
type MediaProbe interface {
	ImageGPS(ctx context.Context, payload []byte) (*entity.LatLng, error)
	VideoGPS(ctx context.Context, payload []byte) (*entity.LatLng, error)
	DecodeQR(ctx context.Context, payload []byte) (string, error)
}

// CoverImageStore persists a capture's image asset locally and returns
// the stored path.
type CoverImageStore interface {
	Persist(ctx context.Context, ref string) (string, error)
}

// ProductLookup resolves a scanned product code.
type ProductLookup interface {
	ByCode(ctx context.Context, code string) (*entity.ProductResult, error)
}

// KnowledgeGraph receives descriptors of completed items for indexing.
type KnowledgeGraph interface {
	Index(ctx context.Context, d entity.ItemDescriptor) error
}

// Bundle groups every injected capability. Any field may be nil; the
// orchestrator skips tasks whose provider is absent.
type Bundle struct {
	Link     LinkMetadata
	Places   PlaceLookup
	Search   WebSearch
	Weather  Weather
	Activity Activity
	Device   DeviceLocation
	Media    MediaProbe
	Covers   CoverImageStore
	Products ProductLookup
	Graph    KnowledgeGraph
}
