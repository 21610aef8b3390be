package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/capturedesk/capturedesk/constants"
)

// Evidence sources for reasoning statements.
const (
	EvidenceVisual   = "visual"
	EvidenceLocation = "location"
)

// Statement is one intent or activity inference from the reasoning pass,
// tagged by the evidence that produced it. Visual evidence outranks
// location evidence when both speak to the same intent.
type Statement struct {
	Text     string `json:"text"`
	Evidence string `json:"evidence"` // "visual" | "location"
}

// ProcessedItem is the persisted, queryable aggregate one capture becomes.
// Exactly one item exists per resolved id; enrichment passes only ever
// strengthen fields, they never regress them.
type ProcessedItem struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url,omitempty"`
	Title      string    `json:"title,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	EntityType string    `json:"entity_type,omitempty"`
	Modality   string    `json:"modality,omitempty"`

	Tags       []string             `json:"tags,omitempty"`
	Categories []string             `json:"categories,omitempty"`
	Purposes   []string             `json:"purposes,omitempty"`
	Questions  []string             `json:"questions,omitempty"`
	Statements []Statement          `json:"statements,omitempty"`
	Status     constants.ItemStatus `json:"status"`

	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastProcessed *time.Time `json:"last_processed,omitempty"`

	FailureCount  int        `json:"failure_count"`
	ProcessingLog []LogEntry `json:"processing_log,omitempty"`

	Weather  *WeatherContext  `json:"weather,omitempty"`
	Activity *ActivityContext `json:"activity,omitempty"`
	Place    *PlaceContext    `json:"place,omitempty"`
	Web      *WebContext      `json:"web,omitempty"`
	Document *DocumentContext `json:"document,omitempty"`
	QRCode   *QRCodeContext   `json:"qr_code,omitempty"`

	CoverImagePath string  `json:"cover_image_path,omitempty"`
	Price          float64 `json:"price,omitempty"`
	Rating         float64 `json:"rating,omitempty"`

	SessionID       string     `json:"session_id,omitempty"`
	ParentID        *uuid.UUID `json:"parent_id,omitempty"`
	MasterCaptureID string     `json:"master_capture_id,omitempty"`
}

// AddTags unions the given tags into the item's tag set, preserving order
// of first appearance.
func (p *ProcessedItem) AddTags(tags ...string) {
	p.Tags = unionStrings(p.Tags, tags)
}

// AddCategories unions the given categories into the item's category set.
func (p *ProcessedItem) AddCategories(cats ...string) {
	p.Categories = unionStrings(p.Categories, cats)
}

// AddPurposes unions inferred purposes into the item's purpose set.
func (p *ProcessedItem) AddPurposes(ps ...string) {
	p.Purposes = unionStrings(p.Purposes, ps)
}

// AddQuestions unions follow-up questions into the item's question set.
func (p *ProcessedItem) AddQuestions(qs ...string) {
	p.Questions = unionStrings(p.Questions, qs)
}

// AppendLog appends an audit-trail entry.
func (p *ProcessedItem) AppendLog(at time.Time, event, detail string) {
	p.ProcessingLog = append(p.ProcessingLog, NewLogEntry(at, event, detail))
}

// Clone returns a copy that shares no mutable state with the receiver,
// safe to hand across a goroutine boundary.
func (p *ProcessedItem) Clone() *ProcessedItem {
	cp := *p
	cp.Tags = slices.Clone(p.Tags)
	cp.Categories = slices.Clone(p.Categories)
	cp.Purposes = slices.Clone(p.Purposes)
	cp.Questions = slices.Clone(p.Questions)
	cp.Statements = slices.Clone(p.Statements)
	cp.ProcessingLog = slices.Clone(p.ProcessingLog)
	if p.LastProcessed != nil {
		t := *p.LastProcessed
		cp.LastProcessed = &t
	}
	if p.Weather != nil {
		w := *p.Weather
		cp.Weather = &w
	}
	if p.Activity != nil {
		a := *p.Activity
		cp.Activity = &a
	}
	if p.Place != nil {
		pl := *p.Place
		pl.Categories = slices.Clone(p.Place.Categories)
		if p.Place.Coordinate != nil {
			c := *p.Place.Coordinate
			pl.Coordinate = &c
		}
		if p.Place.OpenNow != nil {
			b := *p.Place.OpenNow
			pl.OpenNow = &b
		}
		cp.Place = &pl
	}
	if p.Web != nil {
		w := *p.Web
		w.StructuredData = slices.Clone(p.Web.StructuredData)
		cp.Web = &w
	}
	if p.Document != nil {
		d := *p.Document
		cp.Document = &d
	}
	if p.QRCode != nil {
		q := *p.QRCode
		cp.QRCode = &q
	}
	if p.ParentID != nil {
		id := *p.ParentID
		cp.ParentID = &id
	}
	return &cp
}

// Coordinate returns the item's place coordinate, if any.
func (p *ProcessedItem) Coordinate() *LatLng {
	if p.Place == nil {
		return nil
	}
	return p.Place.Coordinate
}

func unionStrings(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		seen[s] = struct{}{}
	}
	out := existing
	for _, s := range incoming {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
