package entity

import "encoding/json"

// WeatherContext captures conditions at the resolved coordinate at
// processing time.
type WeatherContext struct {
	Condition    string  `json:"condition"`
	TemperatureC float64 `json:"temperature_c"`
}

// ActivityContext is the device's physical-activity classification.
type ActivityContext struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// PlaceContext is the authoritative place identity on an item.
// UserPinned marks an identity the user established explicitly; a pinned
// place survives generic nearby-search results on later passes.
type PlaceContext struct {
	Name       string   `json:"name,omitempty"`
	Categories []string `json:"categories,omitempty"`
	PlaceID    string   `json:"place_id,omitempty"`
	Address    string   `json:"address,omitempty"`
	Coordinate *LatLng  `json:"coordinate,omitempty"`
	Rating     float64  `json:"rating,omitempty"`
	OpenNow    *bool    `json:"open_now,omitempty"`
	UserPinned bool     `json:"user_pinned,omitempty"`
}

// HomeLabel is the generic placeholder assigned by the home heuristic.
// It is deliberately weak: later passes may demote it.
const HomeLabel = "Home"

// IsHome reports whether the context is the generic home placeholder.
func (p *PlaceContext) IsHome() bool {
	return p != nil && p.Name == HomeLabel
}

// WebContext holds what was captured from a web page. Merges are
// field-wise: a failed re-fetch must not erase a previous snapshot.
type WebContext struct {
	SiteName       string          `json:"site_name,omitempty"`
	SnapshotRef    string          `json:"snapshot_ref,omitempty"`
	ExtractedText  string          `json:"extracted_text,omitempty"`
	StructuredData json.RawMessage `json:"structured_data,omitempty"`
}

// Backfill copies fields that are set on old but missing on the receiver.
func (w *WebContext) Backfill(old *WebContext) {
	if old == nil {
		return
	}
	if w.SiteName == "" {
		w.SiteName = old.SiteName
	}
	if w.SnapshotRef == "" {
		w.SnapshotRef = old.SnapshotRef
	}
	if w.ExtractedText == "" {
		w.ExtractedText = old.ExtractedText
	}
	if len(w.StructuredData) == 0 {
		w.StructuredData = old.StructuredData
	}
}

// DocumentContext holds text recovered from a scanned document.
type DocumentContext struct {
	PageCount int    `json:"page_count,omitempty"`
	Text      string `json:"text,omitempty"`
}

// QRCodeContext holds a decoded QR payload.
type QRCodeContext struct {
	Payload string `json:"payload"`
	Kind    string `json:"kind,omitempty"` // "url" | "text"
}
