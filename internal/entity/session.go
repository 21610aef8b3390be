package entity

import "time"

// Session is a time/place-bounded grouping of related captures. Sessions
// are created lazily when the first item references a session id and may
// be merged away by consolidation; after a merge the losing id is never
// referenced again.
type Session struct {
	SessionID    string    `json:"session_id"`
	Title        string    `json:"title,omitempty"`
	Summary      string    `json:"summary,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Coordinate   *LatLng   `json:"coordinate,omitempty"`
	PlaceID      string    `json:"place_id,omitempty"`
	LocationName string    `json:"location_name,omitempty"`
}

// HasUserPlace reports whether the session carries an explicit place name,
// which counts as a user override for location resolution.
func (s *Session) HasUserPlace() bool {
	return s != nil && s.LocationName != "" && s.LocationName != HomeLabel
}
