package utils

import (
	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/gen/ent"
	"github.com/capturedesk/capturedesk/internal/entity"
)

func ToItem(e *ent.ProcessedItem) *entity.ProcessedItem {
	return &entity.ProcessedItem{
		ID:              e.ID,
		URL:             e.URL,
		Title:           e.Title,
		Summary:         e.Summary,
		EntityType:      e.EntityType,
		Modality:        e.Modality,
		Tags:            e.Tags,
		Categories:      e.Categories,
		Purposes:        e.Purposes,
		Questions:       e.Questions,
		Statements:      e.Statements,
		Status:          constants.ItemStatus(e.Status),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		LastProcessed:   e.LastProcessed,
		FailureCount:    e.FailureCount,
		ProcessingLog:   e.ProcessingLog,
		Weather:         e.Weather,
		Activity:        e.Activity,
		Place:           e.Place,
		Web:             e.Web,
		Document:        e.Document,
		QRCode:          e.QrCode,
		CoverImagePath:  e.CoverImagePath,
		Price:           e.Price,
		Rating:          e.Rating,
		SessionID:       e.SessionID,
		ParentID:        e.ParentID,
		MasterCaptureID: e.MasterCaptureID,
	}
}

func ToItems(rows []*ent.ProcessedItem) []*entity.ProcessedItem {
	out := make([]*entity.ProcessedItem, len(rows))
	for i, r := range rows {
		out[i] = ToItem(r)
	}
	return out
}

func ToSession(e *ent.Session) *entity.Session {
	return &entity.Session{
		SessionID:    e.ID,
		Title:        e.Title,
		Summary:      e.Summary,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		Coordinate:   e.Coordinate,
		PlaceID:      e.PlaceID,
		LocationName: e.LocationName,
	}
}

func ToSessions(rows []*ent.Session) []*entity.Session {
	out := make([]*entity.Session, len(rows))
	for i, r := range rows {
		out[i] = ToSession(r)
	}
	return out
}

func ToCapture(e *ent.CaptureInput) *entity.CaptureInput {
	return &entity.CaptureInput{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		URL:         e.URL,
		Text:        e.Text,
		Source:      e.Source,
		Payload:     e.Payload,
		PayloadPath: e.PayloadPath,
		InputType:   e.InputType,
		Descriptor:  e.Descriptor,
	}
}

func ToCaptures(rows []*ent.CaptureInput) []*entity.CaptureInput {
	out := make([]*entity.CaptureInput, len(rows))
	for i, r := range rows {
		out[i] = ToCapture(r)
	}
	return out
}
