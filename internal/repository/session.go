package repository

import (
	"context"
	"log/slog"

	"github.com/capturedesk/capturedesk/gen/ent"
	"github.com/capturedesk/capturedesk/gen/ent/session"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/utils"
)

// SessionRepository persists Sessions.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*entity.Session, error)
	Create(ctx context.Context, s *entity.Session) error
	Save(ctx context.Context, s *entity.Session) error
	Delete(ctx context.Context, sessionID string) error
	ListAll(ctx context.Context) ([]*entity.Session, error)
}

type sessionRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSessionRepository(client *ent.Client, logger *slog.Logger) SessionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionRepo{client: client, logger: logger}
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*entity.Session, error) {
	row, err := r.client.Session.Query().
		Where(session.ID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("session.get_failed", "session_id", sessionID, "error", err)
		return nil, err
	}
	return utils.ToSession(row), nil
}

func (r *sessionRepo) Create(ctx context.Context, s *entity.Session) error {
	err := WithRetry(ctx, r.logger, "session.create", func(ctx context.Context) error {
		b := r.client.Session.Create().
			SetID(s.SessionID).
			SetTitle(s.Title).
			SetSummary(s.Summary).
			SetPlaceID(s.PlaceID).
			SetLocationName(s.LocationName)
		if !s.CreatedAt.IsZero() {
			b = b.SetCreatedAt(s.CreatedAt)
		}
		if s.Coordinate != nil {
			b = b.SetCoordinate(s.Coordinate)
		}
		return b.Exec(ctx)
	})
	if err != nil {
		r.logger.Error("session.create_failed", "session_id", s.SessionID, "error", err)
		return err
	}
	r.logger.Info("session.created", "session_id", s.SessionID)
	return nil
}

func (r *sessionRepo) Save(ctx context.Context, s *entity.Session) error {
	err := WithRetry(ctx, r.logger, "session.save", func(ctx context.Context) error {
		u := r.client.Session.UpdateOneID(s.SessionID).
			SetTitle(s.Title).
			SetSummary(s.Summary).
			SetPlaceID(s.PlaceID).
			SetLocationName(s.LocationName)
		if s.Coordinate != nil {
			u = u.SetCoordinate(s.Coordinate)
		}
		return u.Exec(ctx)
	})
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("session.save_failed", "session_id", s.SessionID, "error", err)
		return err
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	err := WithRetry(ctx, r.logger, "session.delete", func(ctx context.Context) error {
		return r.client.Session.DeleteOneID(sessionID).Exec(ctx)
	})
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("session.delete_failed", "session_id", sessionID, "error", err)
		return err
	}
	return nil
}

func (r *sessionRepo) ListAll(ctx context.Context) ([]*entity.Session, error) {
	rows, err := r.client.Session.Query().
		Order(session.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("session.list_failed", "error", err)
		return nil, err
	}
	return utils.ToSessions(rows), nil
}
