package constants

// ItemStatus is the canonical lifecycle status for rows in processed_items.
type ItemStatus string

// Stable values (store these exact strings in DB).
const (
	StatusQueued         ItemStatus = "QUEUED"          // waiting to be picked up
	StatusProcessing     ItemStatus = "PROCESSING"      // enrichment in flight
	StatusReady          ItemStatus = "READY"           // all mandatory steps completed
	StatusFailed         ItemStatus = "FAILED"          // reasoning or a mandatory step failed
	StatusReviewRequired ItemStatus = "REVIEW_REQUIRED" // surfaced for human confirmation
)

// MaxFailureCount is the number of consecutive failures an item may
// accumulate before it is deleted from the store instead of retried.
const MaxFailureCount = 2

// ItemStatuses holds the allowed values for the status field on processed_items.
var ItemStatuses = []string{
	string(StatusQueued),
	string(StatusProcessing),
	string(StatusReady),
	string(StatusFailed),
	string(StatusReviewRequired),
}

// CanRetry reports whether a status may transition back to QUEUED.
func CanRetry(s ItemStatus) bool {
	return s == StatusFailed || s == StatusReviewRequired
}

// IsTerminal reports whether the status needs no further pipeline work.
func IsTerminal(s ItemStatus) bool {
	return s == StatusReady || s == StatusFailed || s == StatusReviewRequired
}
