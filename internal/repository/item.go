package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/gen/ent"
	"github.com/capturedesk/capturedesk/gen/ent/processeditem"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/utils"
)

// ItemRepository persists ProcessedItems. Save carries the full aggregate;
// the pipeline's single-writer discipline makes read-modify-write safe.
type ItemRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.ProcessedItem, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, item *entity.ProcessedItem) error
	Save(ctx context.Context, item *entity.ProcessedItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status *constants.ItemStatus, limit int) ([]*entity.ProcessedItem, error)
	ListBySession(ctx context.Context, sessionID string) ([]*entity.ProcessedItem, error)
	ListCreatedSince(ctx context.Context, cutoff time.Time) ([]*entity.ProcessedItem, error)
	ReassignSession(ctx context.Context, from, to string) (int, error)
	ResetStaleProcessing(ctx context.Context, olderThan time.Time) (int, error)
}

type itemRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewItemRepository(client *ent.Client, logger *slog.Logger) ItemRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &itemRepo{client: client, logger: logger}
}

func (r *itemRepo) Get(ctx context.Context, id uuid.UUID) (*entity.ProcessedItem, error) {
	row, err := r.client.ProcessedItem.Query().
		Where(processeditem.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("item.get_failed", "item_id", id, "error", err)
		return nil, err
	}
	return utils.ToItem(row), nil
}

func (r *itemRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.ProcessedItem.Query().
		Where(processeditem.ID(id)).
		Exist(ctx)
}

func (r *itemRepo) Create(ctx context.Context, item *entity.ProcessedItem) error {
	err := WithRetry(ctx, r.logger, "item.create", func(ctx context.Context) error {
		b := r.client.ProcessedItem.Create().
			SetID(item.ID).
			SetURL(item.URL).
			SetTitle(item.Title).
			SetSummary(item.Summary).
			SetEntityType(item.EntityType).
			SetModality(item.Modality).
			SetTags(item.Tags).
			SetCategories(item.Categories).
			SetPurposes(item.Purposes).
			SetQuestions(item.Questions).
			SetStatements(item.Statements).
			SetStatus(string(item.Status)).
			SetFailureCount(item.FailureCount).
			SetProcessingLog(item.ProcessingLog).
			SetCoverImagePath(item.CoverImagePath).
			SetPrice(item.Price).
			SetRating(item.Rating).
			SetSessionID(item.SessionID).
			SetMasterCaptureID(item.MasterCaptureID)
		if !item.CreatedAt.IsZero() {
			b = b.SetCreatedAt(item.CreatedAt)
		}
		if item.Weather != nil {
			b = b.SetWeather(item.Weather)
		}
		if item.Activity != nil {
			b = b.SetActivity(item.Activity)
		}
		if item.Place != nil {
			b = b.SetPlace(item.Place)
		}
		if item.Web != nil {
			b = b.SetWeb(item.Web)
		}
		if item.Document != nil {
			b = b.SetDocument(item.Document)
		}
		if item.QRCode != nil {
			b = b.SetQrCode(item.QRCode)
		}
		if item.ParentID != nil {
			b = b.SetParentID(*item.ParentID)
		}
		return b.Exec(ctx)
	})
	if err != nil {
		r.logger.Error("item.create_failed", "item_id", item.ID, "error", err)
		return err
	}
	r.logger.Info("item.created", "item_id", item.ID, "status", item.Status)
	return nil
}

func (r *itemRepo) Save(ctx context.Context, item *entity.ProcessedItem) error {
	err := WithRetry(ctx, r.logger, "item.save", func(ctx context.Context) error {
		u := r.client.ProcessedItem.UpdateOneID(item.ID).
			SetURL(item.URL).
			SetTitle(item.Title).
			SetSummary(item.Summary).
			SetEntityType(item.EntityType).
			SetModality(item.Modality).
			SetTags(item.Tags).
			SetCategories(item.Categories).
			SetPurposes(item.Purposes).
			SetQuestions(item.Questions).
			SetStatements(item.Statements).
			SetStatus(string(item.Status)).
			SetFailureCount(item.FailureCount).
			SetProcessingLog(item.ProcessingLog).
			SetCoverImagePath(item.CoverImagePath).
			SetPrice(item.Price).
			SetRating(item.Rating).
			SetSessionID(item.SessionID).
			SetMasterCaptureID(item.MasterCaptureID)
		if item.LastProcessed != nil {
			u = u.SetLastProcessed(*item.LastProcessed)
		}
		if item.Weather != nil {
			u = u.SetWeather(item.Weather)
		}
		if item.Activity != nil {
			u = u.SetActivity(item.Activity)
		}
		if item.Place != nil {
			u = u.SetPlace(item.Place)
		}
		if item.Web != nil {
			u = u.SetWeb(item.Web)
		}
		if item.Document != nil {
			u = u.SetDocument(item.Document)
		}
		if item.QRCode != nil {
			u = u.SetQrCode(item.QRCode)
		}
		if item.ParentID != nil {
			u = u.SetParentID(*item.ParentID)
		}
		return u.Exec(ctx)
	})
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("item.save_failed", "item_id", item.ID, "error", err)
		return err
	}
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := WithRetry(ctx, r.logger, "item.delete", func(ctx context.Context) error {
		return r.client.ProcessedItem.DeleteOneID(id).Exec(ctx)
	})
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("item.delete_failed", "item_id", id, "error", err)
		return err
	}
	r.logger.Info("item.deleted", "item_id", id)
	return nil
}

func (r *itemRepo) List(ctx context.Context, status *constants.ItemStatus, limit int) ([]*entity.ProcessedItem, error) {
	q := r.client.ProcessedItem.Query()
	if status != nil {
		q = q.Where(processeditem.Status(string(*status)))
	}
	q = q.Order(processeditem.ByCreatedAt())
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("item.list_failed", "error", err)
		return nil, err
	}
	return utils.ToItems(rows), nil
}

func (r *itemRepo) ListBySession(ctx context.Context, sessionID string) ([]*entity.ProcessedItem, error) {
	rows, err := r.client.ProcessedItem.Query().
		Where(processeditem.SessionID(sessionID)).
		Order(processeditem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("item.list_by_session_failed", "session_id", sessionID, "error", err)
		return nil, err
	}
	return utils.ToItems(rows), nil
}

func (r *itemRepo) ListCreatedSince(ctx context.Context, cutoff time.Time) ([]*entity.ProcessedItem, error) {
	rows, err := r.client.ProcessedItem.Query().
		Where(processeditem.CreatedAtGTE(cutoff)).
		Order(processeditem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("item.list_since_failed", "cutoff", cutoff, "error", err)
		return nil, err
	}
	return utils.ToItems(rows), nil
}

func (r *itemRepo) ReassignSession(ctx context.Context, from, to string) (int, error) {
	var n int
	err := WithRetry(ctx, r.logger, "item.reassign_session", func(ctx context.Context) error {
		var err error
		n, err = r.client.ProcessedItem.Update().
			Where(processeditem.SessionID(from)).
			SetSessionID(to).
			Save(ctx)
		return err
	})
	if err != nil {
		r.logger.Error("item.reassign_session_failed", "from", from, "to", to, "error", err)
		return 0, err
	}
	return n, nil
}

// ResetStaleProcessing flips items stuck in PROCESSING past the cutoff
// back to QUEUED. This is the crash-recovery half of the state machine.
func (r *itemRepo) ResetStaleProcessing(ctx context.Context, olderThan time.Time) (int, error) {
	var n int
	err := WithRetry(ctx, r.logger, "item.reset_stale", func(ctx context.Context) error {
		var err error
		n, err = r.client.ProcessedItem.Update().
			Where(
				processeditem.Status(string(constants.StatusProcessing)),
				processeditem.UpdatedAtLT(olderThan),
			).
			SetStatus(string(constants.StatusQueued)).
			Save(ctx)
		return err
	})
	if err != nil {
		r.logger.Error("item.reset_stale_failed", "error", err)
		return 0, err
	}
	if n > 0 {
		r.logger.Warn("item.reset_stale", "count", n, "older_than", olderThan)
	}
	return n, nil
}
