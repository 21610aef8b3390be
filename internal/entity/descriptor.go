package entity

import "github.com/google/uuid"

// ItemDescriptor is an immutable hint bundle supplied by the caller
// alongside a capture. Everything here is optional; the pipeline treats
// descriptor values as cheap signals that may be strengthened later.
type ItemDescriptor struct {
	ID              uuid.UUID `json:"id,omitempty"`
	URL             string    `json:"url,omitempty"`
	Title           string    `json:"title,omitempty"`
	Description     string    `json:"description,omitempty"`
	StyleTags       []string  `json:"style_tags,omitempty"`
	Categories      []string  `json:"categories,omitempty"`
	Type            string    `json:"type,omitempty"`
	LocationName    string    `json:"location_name,omitempty"`
	Coordinate      *LatLng   `json:"coordinate,omitempty"`
	PlaceID         string    `json:"place_id,omitempty"`
	CoverImageRef   string    `json:"cover_image_ref,omitempty"`
	SessionID       string    `json:"session_id,omitempty"`
	AttributionID   string    `json:"attribution_id,omitempty"`
	MasterCaptureID string    `json:"master_capture_id,omitempty"`
	Purposes        []string  `json:"purposes,omitempty"`
}
