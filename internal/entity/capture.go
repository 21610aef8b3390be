package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaptureInput is a raw unit of work awaiting processing. It is consumed
// exactly once by the upsert manager and deleted only after the item it
// produced has been persisted; a row that survives a crash is the retry
// record (there is no separate write-ahead log).
type CaptureInput struct {
	ID          uuid.UUID       `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	URL         string          `json:"url,omitempty"`
	Text        string          `json:"text,omitempty"`
	Source      string          `json:"source,omitempty"`
	Payload     []byte          `json:"payload,omitempty"`
	PayloadPath string          `json:"payload_path,omitempty"`
	InputType   string          `json:"input_type"`
	Descriptor  *ItemDescriptor `json:"descriptor,omitempty"`
}

// Age returns how long ago the capture was created.
func (c *CaptureInput) Age(now time.Time) time.Duration {
	return now.Sub(c.CreatedAt)
}
