package entity

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// LogEntry is one line of an item's append-only processing audit trail.
// IDs are ULIDs so the trail sorts by time without a secondary key.
type LogEntry struct {
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
	Event  string    `json:"event"`
	Detail string    `json:"detail,omitempty"`
}

// NewLogEntry stamps an entry with a fresh ULID and the given time.
func NewLogEntry(at time.Time, event, detail string) LogEntry {
	id := ulid.MustNew(ulid.Timestamp(at), rand.New(rand.NewSource(at.UnixNano())))
	return LogEntry{ID: id.String(), At: at.UTC(), Event: event, Detail: detail}
}
