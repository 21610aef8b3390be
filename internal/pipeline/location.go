package pipeline

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/providers"
)

// ResolvedLocation is the single authoritative location decision for one
// processing pass.
type ResolvedLocation struct {
	Coord        *entity.LatLng
	PlaceID      string
	Name         string
	UserOverride bool
	// PromotedURL is set when a QR payload turned out to be a URL and was
	// promoted to the capture's URL mid-resolution.
	PromotedURL string
	// QRPayload carries a decoded non-empty QR payload regardless of kind.
	QRPayload string
}

var (
	// "37.7749,-122.4194" with optional whitespace
	reLatLng = regexp.MustCompile(`^\s*(-?\d{1,3}(?:\.\d+)?)\s*,\s*(-?\d{1,3}(?:\.\d+)?)\s*$`)
	// ISO 6709 "+37.7749-122.4194/" as found in video metadata tracks
	reISO6709 = regexp.MustCompile(`([+-]\d{1,3}(?:\.\d+)?)([+-]\d{1,3}(?:\.\d+)?)`)
)

// ParseLatLng parses a plain "lat,lon" string.
func ParseLatLng(s string) (entity.LatLng, bool) {
	m := reLatLng.FindStringSubmatch(s)
	if m == nil {
		return entity.LatLng{}, false
	}
	lat, err1 := strconv.ParseFloat(m[1], 64)
	lng, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return entity.LatLng{}, false
	}
	return entity.LatLng{Lat: lat, Lng: lng}, true
}

// ParseISO6709 parses an ISO 6709 coordinate string such as
// "+37.7749-122.4194+010.000/" from common or QuickTime metadata tracks.
func ParseISO6709(s string) (entity.LatLng, bool) {
	m := reISO6709.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return entity.LatLng{}, false
	}
	lat, err1 := strconv.ParseFloat(m[1], 64)
	lng, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return entity.LatLng{}, false
	}
	return entity.LatLng{Lat: lat, Lng: lng}, true
}

// locationDeps is the slice of the provider bundle the chain may consult.
type locationDeps struct {
	device providers.DeviceLocation
	media  providers.MediaProbe
}

// resolveLocation walks the strict priority cascade and returns the first
// hit. Each step short-circuits the rest; the Home placeholder is demoted
// so later steps may refine it.
func resolveLocation(
	ctx context.Context,
	logger *slog.Logger,
	deps locationDeps,
	item *entity.ProcessedItem,
	capture *entity.CaptureInput,
	session *entity.Session,
	liveMaxAge time.Duration,
	now time.Time,
) ResolvedLocation {
	// 1. explicit place context already on the record, unless generic Home
	if p := item.Place; p != nil && !p.IsHome() && (p.Coordinate != nil || p.PlaceID != "" || p.Name != "") {
		return ResolvedLocation{
			Coord:        p.Coordinate,
			PlaceID:      p.PlaceID,
			Name:         p.Name,
			UserOverride: p.UserPinned,
		}
	}

	// 2. a parsed "lat,lon" string already on the record (same Home exception)
	if d := capture.Descriptor; d != nil {
		if d.Coordinate != nil && !d.Coordinate.IsZero() {
			return ResolvedLocation{
				Coord:        d.Coordinate,
				PlaceID:      d.PlaceID,
				Name:         d.LocationName,
				UserOverride: d.LocationName != "" && d.LocationName != entity.HomeLabel,
			}
		}
		if c, ok := ParseLatLng(d.LocationName); ok {
			return ResolvedLocation{Coord: &c}
		}
	}

	// 3. live device location, only for fresh captures; never used to
	// "correct" an old record during a reprocess
	if deps.device != nil && capture.Age(now) <= liveMaxAge {
		if c, err := deps.device.Current(ctx); err == nil && c != nil && !c.IsZero() {
			return ResolvedLocation{Coord: c}
		} else if err != nil {
			logger.Debug("location.device_unavailable", "error", err)
		}
	}

	// 4. EXIF GPS from an image payload
	if deps.media != nil && len(capture.Payload) > 0 {
		if capture.InputType == string(constants.InputImage) || capture.InputType == string(constants.InputQRCode) {
			if c, err := deps.media.ImageGPS(ctx, capture.Payload); err == nil && c != nil && !c.IsZero() {
				return ResolvedLocation{Coord: c}
			}
		}

		// 5. GPS metadata from a video payload (ISO 6709 tracks)
		if capture.InputType == string(constants.InputMedia) {
			if c, err := deps.media.VideoGPS(ctx, capture.Payload); err == nil && c != nil && !c.IsZero() {
				return ResolvedLocation{Coord: c}
			}
		}
	}

	// 6. QR payload, when the capture carries no URL. A URL payload is
	// promoted to the capture's URL so link enrichment can run on it.
	if deps.media != nil && capture.URL == "" && len(capture.Payload) > 0 {
		if payload, err := deps.media.DecodeQR(ctx, capture.Payload); err == nil && payload != "" {
			res := ResolvedLocation{QRPayload: payload}
			if strings.HasPrefix(payload, "http://") || strings.HasPrefix(payload, "https://") {
				res.PromotedURL = payload
			} else if c, ok := ParseLatLng(strings.TrimPrefix(payload, "geo:")); ok {
				res.Coord = &c
			}
			if res.PromotedURL != "" || res.Coord != nil {
				return res
			}
		}
	}

	// 7. the owning session's coordinate, only when no user override
	// exists; an explicit session place name establishes an override for
	// subsequent passes
	if session != nil && session.Coordinate != nil && !session.Coordinate.IsZero() {
		return ResolvedLocation{
			Coord:        session.Coordinate,
			PlaceID:      session.PlaceID,
			Name:         session.LocationName,
			UserOverride: session.HasUserPlace(),
		}
	}

	return ResolvedLocation{}
}
