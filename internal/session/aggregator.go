package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/reasoning"
	"github.com/capturedesk/capturedesk/internal/repository"
)

// Aggregator groups completed items into sessions, creating sessions
// lazily on first reference and keeping a rolling one-sentence summary
// per session.
type Aggregator struct {
	sessions repository.SessionRepository
	items    repository.ItemRepository
	reason   reasoning.Service
	cfg      common.PipelineConfig
	logger   *slog.Logger
}

func NewAggregator(
	sessions repository.SessionRepository,
	items repository.ItemRepository,
	reason reasoning.Service,
	cfg common.PipelineConfig,
	logger *slog.Logger,
) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		sessions: sessions,
		items:    items,
		reason:   reason,
		cfg:      cfg,
		logger:   logger,
	}
}

// Attach links an item to its session, creating the session on first
// reference. The session adopts the item's place identity unless it
// already has one, and its rolling summary is refreshed best effort.
func (a *Aggregator) Attach(ctx context.Context, item *entity.ProcessedItem) error {
	if item.SessionID == "" {
		return nil
	}

	s, err := a.sessions.Get(ctx, item.SessionID)
	switch {
	case errors.Is(err, common.ErrNotFound):
		s = &entity.Session{
			SessionID: item.SessionID,
			Title:     item.Title,
			CreatedAt: item.CreatedAt,
		}
		adoptPlace(s, item)
		if err := a.sessions.Create(ctx, s); err != nil {
			return fmt.Errorf("create session %s: %w", s.SessionID, err)
		}
	case err != nil:
		return fmt.Errorf("load session %s: %w", item.SessionID, err)
	default:
		adoptPlace(s, item)
	}

	a.refreshSummary(ctx, s, item)
	if err := a.sessions.Save(ctx, s); err != nil {
		return fmt.Errorf("save session %s: %w", s.SessionID, err)
	}
	a.logger.Debug("session.attached", "session_id", s.SessionID, "item_id", item.ID)
	return nil
}

// adoptPlace copies the item's place identity onto the session when the
// session has none of its own.
func adoptPlace(s *entity.Session, item *entity.ProcessedItem) {
	p := item.Place
	if p == nil {
		return
	}
	if s.Coordinate == nil && p.Coordinate != nil {
		s.Coordinate = p.Coordinate
	}
	if s.PlaceID == "" {
		s.PlaceID = p.PlaceID
	}
	if s.LocationName == "" && !p.IsHome() {
		s.LocationName = p.Name
	}
}

// refreshSummary folds the new item into the session's rolling summary.
// A reasoning failure leaves the previous summary in place.
func (a *Aggregator) refreshSummary(ctx context.Context, s *entity.Session, item *entity.ProcessedItem) {
	addition := item.Title
	if item.Summary != "" {
		addition = item.Title + ": " + item.Summary
	}
	for _, p := range item.Purposes {
		addition += " (" + p + ")"
		break
	}

	summary, err := a.reason.Summarize(ctx, reasoning.SummarizeRequest{
		Title:     s.Title,
		Existing:  s.Summary,
		Additions: []string{addition},
	})
	if err != nil {
		a.logger.Warn("session.summary_failed", "session_id", s.SessionID, "error", err)
		return
	}
	if summary != "" {
		s.Summary = summary
	}
	if s.Title == "" {
		s.Title = item.Title
	}
	s.UpdatedAt = time.Now()
}
