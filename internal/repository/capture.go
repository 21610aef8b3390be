package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/capturedesk/capturedesk/gen/ent"
	"github.com/capturedesk/capturedesk/gen/ent/captureinput"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/utils"
)

// CaptureRepository persists raw captures. A capture row doubles as the
// retry record: it is deleted only after its item completed successfully.
type CaptureRepository interface {
	Create(ctx context.Context, c *entity.CaptureInput) error
	Get(ctx context.Context, id uuid.UUID) (*entity.CaptureInput, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListPending(ctx context.Context) ([]*entity.CaptureInput, error)
}

type captureRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCaptureRepository(client *ent.Client, logger *slog.Logger) CaptureRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &captureRepo{client: client, logger: logger}
}

func (r *captureRepo) Create(ctx context.Context, c *entity.CaptureInput) error {
	err := WithRetry(ctx, r.logger, "capture.create", func(ctx context.Context) error {
		b := r.client.CaptureInput.Create().
			SetID(c.ID).
			SetURL(c.URL).
			SetText(c.Text).
			SetSource(c.Source).
			SetPayloadPath(c.PayloadPath).
			SetInputType(c.InputType)
		if !c.CreatedAt.IsZero() {
			b = b.SetCreatedAt(c.CreatedAt)
		}
		if len(c.Payload) > 0 {
			b = b.SetPayload(c.Payload)
		}
		if c.Descriptor != nil {
			b = b.SetDescriptor(c.Descriptor)
		}
		return b.Exec(ctx)
	})
	if err != nil {
		r.logger.Error("capture.create_failed", "capture_id", c.ID, "error", err)
		return err
	}
	r.logger.Info("capture.created", "capture_id", c.ID, "input_type", c.InputType)
	return nil
}

func (r *captureRepo) Get(ctx context.Context, id uuid.UUID) (*entity.CaptureInput, error) {
	row, err := r.client.CaptureInput.Query().
		Where(captureinput.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("capture.get_failed", "capture_id", id, "error", err)
		return nil, err
	}
	return utils.ToCapture(row), nil
}

func (r *captureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := WithRetry(ctx, r.logger, "capture.delete", func(ctx context.Context) error {
		return r.client.CaptureInput.DeleteOneID(id).Exec(ctx)
	})
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("capture.delete_failed", "capture_id", id, "error", err)
		return err
	}
	return nil
}

// ListPending returns every stored capture in arrival order. Anything
// still present either never started or crashed mid-flight; both are
// safe to (re)process because processing is idempotent per resolved id.
func (r *captureRepo) ListPending(ctx context.Context) ([]*entity.CaptureInput, error) {
	rows, err := r.client.CaptureInput.Query().
		Order(captureinput.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("capture.list_pending_failed", "error", err)
		return nil, err
	}
	return utils.ToCaptures(rows), nil
}
