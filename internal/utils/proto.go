package utils

import (
	"time"

	capturespb "github.com/capturedesk/capturedesk/gen/proto/captures/v1"
	"github.com/capturedesk/capturedesk/internal/entity"
)

// ToPBItem converts a processed item to its wire representation.
func ToPBItem(it *entity.ProcessedItem) *capturespb.Item {
	pb := &capturespb.Item{
		Id:             it.ID.String(),
		Url:            it.URL,
		Title:          it.Title,
		Summary:        it.Summary,
		EntityType:     it.EntityType,
		Status:         string(it.Status),
		Tags:           it.Tags,
		Categories:     it.Categories,
		Purposes:       it.Purposes,
		Questions:      it.Questions,
		CreatedAt:      it.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      it.UpdatedAt.Format(time.RFC3339Nano),
		SessionId:      it.SessionID,
		Price:          it.Price,
		Rating:         it.Rating,
		CoverImagePath: it.CoverImagePath,
		FailureCount:   int32(it.FailureCount),
	}
	if it.Place != nil {
		pb.PlaceName = it.Place.Name
		pb.PlaceId = it.Place.PlaceID
	}
	for _, st := range it.Statements {
		pb.Statements = append(pb.Statements, &capturespb.Statement{Text: st.Text, Evidence: st.Evidence})
	}
	return pb
}

// ToPBItems converts a slice of processed items.
func ToPBItems(items []*entity.ProcessedItem) []*capturespb.Item {
	out := make([]*capturespb.Item, 0, len(items))
	for _, it := range items {
		out = append(out, ToPBItem(it))
	}
	return out
}

// FromPBCapture builds a capture input from its wire representation.
func FromPBCapture(c *capturespb.Capture) *entity.CaptureInput {
	in := &entity.CaptureInput{
		URL:         c.GetUrl(),
		Text:        c.GetText(),
		Source:      c.GetSource(),
		PayloadPath: c.GetPayloadPath(),
		InputType:   c.GetInputType(),
	}
	d := &entity.ItemDescriptor{
		Title:           c.GetTitle(),
		LocationName:    c.GetLocationName(),
		PlaceID:         c.GetPlaceId(),
		SessionID:       c.GetSessionId(),
		MasterCaptureID: c.GetMasterCaptureId(),
	}
	if c.GetLat() != 0 || c.GetLng() != 0 {
		d.Coordinate = &entity.LatLng{Lat: c.GetLat(), Lng: c.GetLng()}
	}
	if d.Title != "" || d.LocationName != "" || d.PlaceID != "" ||
		d.SessionID != "" || d.MasterCaptureID != "" || d.Coordinate != nil {
		in.Descriptor = d
	}
	return in
}

// ParseYMD parses a YYYY-MM-DD date string.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
