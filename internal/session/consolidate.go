package session

import (
	"context"
	"fmt"
	"sort"

	"github.com/capturedesk/capturedesk/internal/entity"
)

// Consolidate merges adjacent sessions that are really the same
// real-world event fragmented by repeated processing: creation times
// within the window and coordinates within the degree threshold on both
// axes. Every item referencing a losing session is re-pointed to the
// survivor before the loser is deleted; a merged-away id is never
// referenced again.
func (a *Aggregator) Consolidate(ctx context.Context) (int, error) {
	sessions, err := a.sessions.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list sessions: %w", err)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	merged := 0
	for i := 0; i+1 < len(sessions); i++ {
		survivor, next := sessions[i], sessions[i+1]
		if survivor == nil {
			continue
		}
		if !a.nearDuplicate(survivor, next) {
			continue
		}
		if err := a.merge(ctx, survivor, next); err != nil {
			a.logger.Error("session.merge_failed",
				"survivor", survivor.SessionID, "loser", next.SessionID, "error", err)
			continue
		}
		merged++
		// the survivor absorbs the loser's slot so a run of fragments
		// collapses into one session
		sessions[i+1] = survivor
	}
	if merged > 0 {
		a.logger.Info("session.consolidated", "merged", merged)
	}
	return merged, nil
}

func (a *Aggregator) nearDuplicate(s1, s2 *entity.Session) bool {
	dt := s2.CreatedAt.Sub(s1.CreatedAt)
	if dt < 0 {
		dt = -dt
	}
	if dt >= a.cfg.ConsolidateWindow {
		return false
	}
	if s1.Coordinate == nil || s2.Coordinate == nil {
		return false
	}
	return s1.Coordinate.WithinDegrees(*s2.Coordinate, a.cfg.ConsolidateDegrees)
}

func (a *Aggregator) merge(ctx context.Context, survivor, loser *entity.Session) error {
	n, err := a.items.ReassignSession(ctx, loser.SessionID, survivor.SessionID)
	if err != nil {
		return fmt.Errorf("reassign members: %w", err)
	}

	if survivor.Title == "" {
		survivor.Title = loser.Title
	}
	if survivor.Summary == "" {
		survivor.Summary = loser.Summary
	}
	if survivor.Coordinate == nil {
		survivor.Coordinate = loser.Coordinate
	}
	if survivor.PlaceID == "" {
		survivor.PlaceID = loser.PlaceID
	}
	if survivor.LocationName == "" {
		survivor.LocationName = loser.LocationName
	}
	if err := a.sessions.Save(ctx, survivor); err != nil {
		return fmt.Errorf("save survivor: %w", err)
	}
	if err := a.sessions.Delete(ctx, loser.SessionID); err != nil {
		return fmt.Errorf("delete loser: %w", err)
	}

	a.logger.Info("session.merged",
		"survivor", survivor.SessionID, "loser", loser.SessionID, "repointed", n)
	return nil
}
