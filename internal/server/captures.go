package server

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/capturedesk/capturedesk/constants"
	capturespb "github.com/capturedesk/capturedesk/gen/proto/captures/v1"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/export"
	"github.com/capturedesk/capturedesk/internal/ingest"
	"github.com/capturedesk/capturedesk/internal/queue"
	"github.com/capturedesk/capturedesk/internal/repository"
	"github.com/capturedesk/capturedesk/internal/utils"
)

type CaptureService struct {
	capturespb.UnimplementedCaptureServiceServer
	queue    *queue.Manager
	captures repository.CaptureRepository
	items    repository.ItemRepository
	inbox    *ingest.Inbox
	inboxCfg common.InboxConfig
	exporter *export.Service
	logger   *slog.Logger
}

func NewCaptureService(
	q *queue.Manager,
	captures repository.CaptureRepository,
	items repository.ItemRepository,
	inbox *ingest.Inbox,
	inboxCfg common.InboxConfig,
	exporter *export.Service,
	logger *slog.Logger,
) *CaptureService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CaptureService{
		queue:    q,
		captures: captures,
		items:    items,
		inbox:    inbox,
		inboxCfg: inboxCfg,
		exporter: exporter,
		logger:   logger,
	}
}

func (s *CaptureService) ProcessCapture(ctx context.Context, req *capturespb.ProcessCaptureRequest) (*capturespb.ProcessCaptureResponse, error) {
	pc := req.GetCapture()
	if pc == nil {
		return nil, status.Error(codes.InvalidArgument, "capture is required")
	}
	if strings.TrimSpace(pc.GetUrl()) == "" && strings.TrimSpace(pc.GetText()) == "" && pc.GetPayloadPath() == "" {
		return nil, status.Error(codes.InvalidArgument, "capture needs a url, text, or payload_path")
	}
	if it := pc.GetInputType(); it != "" && !slices.Contains(constants.InputTypes, it) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown input_type %q", it)
	}

	c := utils.FromPBCapture(pc)
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	if c.InputType == "" {
		if constants.IsEnrichableURL(c.URL) {
			c.InputType = string(constants.InputWeb)
		} else {
			c.InputType = string(constants.InputText)
		}
	}

	// persist first so a crash mid-process can recover the capture
	if err := s.captures.Create(ctx, c); err != nil {
		s.logger.Error("server.capture_store_failed", "error", err)
		return nil, status.Error(codes.Internal, "store capture failed")
	}

	item, err := s.queue.ProcessNow(ctx, c)
	if err != nil {
		s.logger.Error("server.process_failed", "capture_id", c.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "process capture: %v", err)
	}
	return &capturespb.ProcessCaptureResponse{Item: utils.ToPBItem(item)}, nil
}

func (s *CaptureService) ProcessInbox(ctx context.Context, _ *capturespb.ProcessInboxRequest) (*capturespb.ProcessInboxResponse, error) {
	if len(s.inboxCfg.Roots) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "no inbox roots configured")
	}
	ingested, err := s.inbox.ScanRoots(ctx, s.inboxCfg.Roots)
	if err != nil {
		s.logger.Error("server.inbox_scan_failed", "error", err)
		return nil, status.Errorf(codes.Internal, "scan inbox: %v", err)
	}
	processed, err := s.queue.DrainPending(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.Error("server.inbox_drain_failed", "error", err)
		return nil, status.Errorf(codes.Internal, "drain: %v", err)
	}
	return &capturespb.ProcessInboxResponse{
		Ingested:  int32(ingested),
		Processed: int32(processed),
	}, nil
}

func (s *CaptureService) DrainPending(ctx context.Context, _ *capturespb.DrainPendingRequest) (*capturespb.DrainPendingResponse, error) {
	processed, err := s.queue.DrainPending(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.Error("server.drain_failed", "error", err)
		return nil, status.Errorf(codes.Internal, "drain: %v", err)
	}
	return &capturespb.DrainPendingResponse{Processed: int32(processed)}, nil
}

func (s *CaptureService) ReprocessSince(req *capturespb.ReprocessSinceRequest, stream capturespb.CaptureService_ReprocessSinceServer) error {
	since, err := utils.ParseYMD(strings.TrimSpace(req.GetSinceDate()))
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "since_date invalid (YYYY-MM-DD): %v", err)
	}

	ctx := stream.Context()
	progress := func(done, total int) {
		_ = stream.Send(&capturespb.ReprocessProgress{Done: int32(done), Total: int32(total)})
	}
	logf := func(line string) {
		_ = stream.Send(&capturespb.ReprocessProgress{Message: line})
	}
	if err := s.queue.ReprocessSince(ctx, since, progress, logf); err != nil && ctx.Err() == nil {
		s.logger.Error("server.reprocess_failed", "error", err)
		return status.Errorf(codes.Internal, "reprocess: %v", err)
	}
	return nil
}

func (s *CaptureService) ListItems(ctx context.Context, req *capturespb.ListItemsRequest) (*capturespb.ListItemsResponse, error) {
	var filter *constants.ItemStatus
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		if !slices.Contains(constants.ItemStatuses, st) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		v := constants.ItemStatus(st)
		filter = &v
	}
	items, err := s.items.List(ctx, filter, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("server.list_items_failed", "error", err)
		return nil, status.Errorf(codes.Internal, "list items: %v", err)
	}
	return &capturespb.ListItemsResponse{Items: utils.ToPBItems(items)}, nil
}

func (s *CaptureService) GetItem(ctx context.Context, req *capturespb.GetItemRequest) (*capturespb.GetItemResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	item, err := s.items.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "item not found")
		}
		s.logger.Error("server.get_item_failed", "item_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get item: %v", err)
	}
	return &capturespb.GetItemResponse{Item: utils.ToPBItem(item)}, nil
}

func (s *CaptureService) ExportItems(ctx context.Context, req *capturespb.ExportItemsRequest) (*capturespb.ExportItemsResponse, error) {
	var filter *constants.ItemStatus
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		if !slices.Contains(constants.ItemStatuses, st) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		v := constants.ItemStatus(st)
		filter = &v
	}

	var from, to *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		from = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		to = &t
	}

	xlsx, err := s.exporter.ExportItemsXLSX(ctx, filter, from, to)
	if err != nil {
		s.logger.Error("server.export_failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &capturespb.ExportItemsResponse{Xlsx: xlsx}, nil
}
