package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/providers"
	"github.com/capturedesk/capturedesk/internal/reasoning"
	"github.com/capturedesk/capturedesk/internal/repository"
)

// SessionHandoff receives completed items for session aggregation.
type SessionHandoff interface {
	Attach(ctx context.Context, item *entity.ProcessedItem) error
}

// Processor is the upsert manager: it resolves a stable identity for each
// capture, creates or refreshes the target record, drives its state
// machine, and schedules the non-blocking reasoning pass. All store
// mutation is serialized through the processor's writer lock; provider
// tasks compute results independently and hand them back here for merging.
type Processor struct {
	items    repository.ItemRepository
	captures repository.CaptureRepository
	sessions repository.SessionRepository

	orch     *Orchestrator
	reason   reasoning.Service
	bundle   providers.Bundle
	pipeCfg  common.PipelineConfig
	chunkCfg common.ReasoningConfig
	handoff  SessionHandoff
	logger   *slog.Logger

	// single-writer discipline for read-modify-write against the store
	mu sync.Mutex

	// cached home coordinate with explicit invalidation
	homeMu sync.RWMutex
	home   *entity.LatLng

	// detached background units (refreshes, reasoning passes)
	detached sync.WaitGroup
}

func NewProcessor(
	items repository.ItemRepository,
	captures repository.CaptureRepository,
	sessions repository.SessionRepository,
	orch *Orchestrator,
	reason reasoning.Service,
	bundle providers.Bundle,
	pipeCfg common.PipelineConfig,
	chunkCfg common.ReasoningConfig,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		items:    items,
		captures: captures,
		sessions: sessions,
		orch:     orch,
		reason:   reason,
		bundle:   bundle,
		pipeCfg:  pipeCfg,
		chunkCfg: chunkCfg,
		logger:   logger,
	}
}

// SetSessionHandoff wires the session aggregator in after construction;
// the aggregator itself depends on the reasoning service.
func (p *Processor) SetSessionHandoff(h SessionHandoff) { p.handoff = h }

// SetHome sets the cached home coordinate used by the Home heuristic.
func (p *Processor) SetHome(c *entity.LatLng) {
	p.homeMu.Lock()
	defer p.homeMu.Unlock()
	p.home = c
}

// InvalidateHome clears the cached home coordinate.
func (p *Processor) InvalidateHome() { p.SetHome(nil) }

func (p *Processor) homeCoord() *entity.LatLng {
	p.homeMu.RLock()
	defer p.homeMu.RUnlock()
	return p.home
}

// Wait blocks until every detached background unit has finished. Used by
// the daemon for graceful shutdown and by tests.
func (p *Processor) Wait() { p.detached.Wait() }

// ResolveID resolves the stable record identity for a capture: a
// deterministic hash of the canonical URL when one is present, the
// capture's own id otherwise. Re-submitting the same URL always targets
// the same record.
func ResolveID(capture *entity.CaptureInput) uuid.UUID {
	url := capture.URL
	if url == "" && capture.Descriptor != nil {
		url = capture.Descriptor.URL
	}
	if constants.IsEnrichableURL(url) {
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(constants.CanonicalURL(url)))
	}
	return capture.ID
}

// Process runs one capture through the pipeline. New records block until
// provisional enrichment is persisted; a refresh of an existing record
// fills empty fields from cheap signals synchronously and re-runs the
// full enrichment as a detached unit, so the caller is not held up.
func (p *Processor) Process(ctx context.Context, capture *entity.CaptureInput) (*entity.ProcessedItem, error) {
	id := ResolveID(capture)
	logger := p.logger.With("item_id", id, "capture_id", capture.ID)

	existing, err := p.items.Get(ctx, id)
	switch {
	case err == nil:
		return p.refresh(ctx, logger, existing, capture)
	case errors.Is(err, common.ErrNotFound):
		item, enriched, err := p.create(ctx, logger, id, capture)
		if err != nil {
			return nil, err
		}
		if enriched {
			p.spawnReasoning(item.ID, capture.ID)
		}
		return item, nil
	default:
		return nil, fmt.Errorf("resolve item %s: %w", id, err)
	}
}

// ProcessSync runs one capture fully inline: enrichment and the
// reasoning pass both finish before it returns. Bulk reprocessing goes
// through here so its batch size actually bounds provider and reasoning
// concurrency; interactive callers use Process and keep the detached
// policy.
func (p *Processor) ProcessSync(ctx context.Context, capture *entity.CaptureInput) (*entity.ProcessedItem, error) {
	id := ResolveID(capture)
	logger := p.logger.With("item_id", id, "capture_id", capture.ID)

	existing, err := p.items.Get(ctx, id)
	switch {
	case err == nil:
		item, err := p.beginRefresh(ctx, logger, existing, capture)
		if err != nil {
			return nil, err
		}
		if err := p.enrich(ctx, item, capture); err != nil {
			p.recordFailure(ctx, item, capture, "enrichment", err)
			return item, nil
		}
		p.runReasoning(ctx, item.ID, capture.ID)
		return item, nil
	case errors.Is(err, common.ErrNotFound):
		item, enriched, err := p.create(ctx, logger, id, capture)
		if err != nil {
			return nil, err
		}
		if enriched {
			p.runReasoning(ctx, item.ID, capture.ID)
		}
		return item, nil
	default:
		return nil, fmt.Errorf("resolve item %s: %w", id, err)
	}
}

// create builds and enriches a brand-new record. The returned bool
// reports whether enrichment succeeded and the reasoning pass should
// follow; scheduling it is the caller's choice of detached or inline.
func (p *Processor) create(ctx context.Context, logger *slog.Logger, id uuid.UUID, capture *entity.CaptureInput) (*entity.ProcessedItem, bool, error) {
	now := time.Now()
	item := &entity.ProcessedItem{
		ID:        id,
		URL:       capture.URL,
		Modality:  capture.InputType,
		Status:    constants.StatusProcessing,
		CreatedAt: capture.CreatedAt,
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	applyDescriptor(item, capture.Descriptor)
	item.AppendLog(now, "item.created", "capture "+capture.ID.String())

	// persist immediately so a store reader sees work in flight
	if err := p.items.Create(ctx, item); err != nil {
		return nil, false, fmt.Errorf("create item %s: %w", id, err)
	}
	logger.Info("pipeline.item_created", "input_type", capture.InputType)

	if err := p.enrich(ctx, item, capture); err != nil {
		p.recordFailure(ctx, item, capture, "enrichment", err)
		return item, false, nil
	}
	return item, true, nil
}

// beginRefresh flips an existing record into processing and applies the
// cheap descriptor signals synchronously.
func (p *Processor) beginRefresh(ctx context.Context, logger *slog.Logger, item *entity.ProcessedItem, capture *entity.CaptureInput) (*entity.ProcessedItem, error) {
	p.mu.Lock()
	item.Status = constants.StatusProcessing
	applyDescriptor(item, capture.Descriptor)
	item.AppendLog(time.Now(), "item.refresh", "capture "+capture.ID.String())
	err := p.items.Save(ctx, item)
	p.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("refresh item %s: %w", item.ID, err)
	}
	logger.Info("pipeline.item_refresh")
	return item, nil
}

func (p *Processor) refresh(ctx context.Context, logger *slog.Logger, item *entity.ProcessedItem, capture *entity.CaptureInput) (*entity.ProcessedItem, error) {
	item, err := p.beginRefresh(ctx, logger, item, capture)
	if err != nil {
		return nil, err
	}

	// the detached unit keeps mutating item; the caller gets a snapshot
	// it can read and serialize freely
	snapshot := item.Clone()
	p.detached.Add(1)
	go func() {
		defer p.detached.Done()
		ctx := context.Background()
		if err := p.enrich(ctx, item, capture); err != nil {
			p.recordFailure(ctx, item, capture, "enrichment", err)
			return
		}
		p.runReasoning(ctx, item.ID, capture.ID)
	}()
	return snapshot, nil
}

// applyDescriptor fills empty/weak fields from the caller-supplied hint
// bundle. Descriptor values are cheap signals; they never overwrite a
// stronger value already on the record.
func applyDescriptor(item *entity.ProcessedItem, d *entity.ItemDescriptor) {
	if d == nil {
		return
	}
	if item.URL == "" {
		item.URL = d.URL
	}
	if WeakTitle(item.Title) && d.Title != "" && !AddressShaped(d.Title) {
		item.Title = d.Title
	}
	if item.Summary == "" {
		item.Summary = d.Description
	}
	if item.EntityType == "" {
		item.EntityType = d.Type
	}
	item.AddTags(d.StyleTags...)
	item.AddCategories(d.Categories...)
	item.AddPurposes(d.Purposes...)
	if item.SessionID == "" {
		item.SessionID = d.SessionID
	}
	if item.MasterCaptureID == "" {
		item.MasterCaptureID = d.MasterCaptureID
	}
	if item.Place == nil && (d.PlaceID != "" || d.Coordinate != nil || d.LocationName != "") {
		item.Place = &entity.PlaceContext{
			Name:       d.LocationName,
			PlaceID:    d.PlaceID,
			Coordinate: d.Coordinate,
			UserPinned: d.LocationName != "" && d.LocationName != entity.HomeLabel,
		}
	}
}

// enrich resolves the authoritative location, fans out to providers,
// merges results under the quality gates, finalizes the title, and
// persists the provisional record.
func (p *Processor) enrich(ctx context.Context, item *entity.ProcessedItem, capture *entity.CaptureInput) error {
	now := time.Now()
	session := p.loadSession(ctx, item, capture)

	loc := resolveLocation(ctx, p.logger,
		locationDeps{device: p.bundle.Device, media: p.bundle.Media},
		item, capture, session, p.pipeCfg.LiveLocationMaxAge, now)

	if loc.QRPayload != "" {
		kind := "text"
		if loc.PromotedURL != "" {
			kind = "url"
			item.URL = loc.PromotedURL
			item.AppendLog(now, "qr.url_promoted", loc.PromotedURL)
		}
		if item.QRCode == nil {
			item.QRCode = &entity.QRCodeContext{Payload: loc.QRPayload, Kind: kind}
		}
	}

	var prevPlaceID, prevPlaceName string
	if item.Place != nil && !item.Place.IsHome() {
		prevPlaceID = item.Place.PlaceID
		prevPlaceName = item.Place.Name
	}

	results := p.orch.Enrich(ctx, capture, item, loc, p.homeCoord())

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, r := range results {
		opts := MergeOptions{PreserveIdentity: loc.UserOverride}
		// a web search confirming the resolved place name should win the title
		if r.Kind == entity.KindWebSearch && r.WebSearch != nil && item.Place != nil &&
			strings.EqualFold(strings.TrimSpace(r.WebSearch.Title), item.Place.Name) {
			opts.ForceTitle = true
		}
		ApplyResult(item, r, opts)
	}

	conflict := placeConflict(item, prevPlaceID, prevPlaceName)
	finalizeTitle(item, now)

	item.Status = constants.StatusReady
	if conflict {
		item.Status = constants.StatusReviewRequired
		item.AppendLog(now, "place.conflict", fmt.Sprintf("place changed from %q to %q", prevPlaceName, item.Place.Name))
	}
	item.AppendLog(time.Now(), "enrichment.done", fmt.Sprintf("%d provider results", len(results)))

	if err := p.items.Save(ctx, item); err != nil {
		return fmt.Errorf("save enriched item %s: %w", item.ID, err)
	}
	return nil
}

// placeConflict reports whether a reprocess resolved a different place
// identity than what was previously recorded. Conflicts are surfaced for
// review, never silently accepted.
func placeConflict(item *entity.ProcessedItem, prevID, prevName string) bool {
	if item.Place == nil || item.Place.IsHome() {
		return false
	}
	if prevID != "" && item.Place.PlaceID != "" && item.Place.PlaceID != prevID {
		return true
	}
	if prevName != "" && item.Place.Name != "" && !strings.EqualFold(item.Place.Name, prevName) {
		return true
	}
	return false
}

// finalizeTitle applies the fallback ladder when the title is still weak
// after enrichment: tags, then the summary prefix, then the location,
// then a timestamped placeholder.
func finalizeTitle(item *entity.ProcessedItem, now time.Time) {
	if !WeakTitle(item.Title) {
		return
	}
	if len(item.Tags) > 0 {
		item.Title = strings.Join(item.Tags[:min(3, len(item.Tags))], ", ")
		return
	}
	if s := strings.TrimSpace(item.Summary); s != "" {
		if len(s) > 60 {
			s = strings.TrimSpace(s[:60]) + "…"
		}
		item.Title = s
		return
	}
	if item.Place != nil && item.Place.Name != "" {
		item.Title = "At: " + item.Place.Name
		return
	}
	item.Title = "Visual Capture " + now.Format("2006-01-02 15:04")
}

func (p *Processor) loadSession(ctx context.Context, item *entity.ProcessedItem, capture *entity.CaptureInput) *entity.Session {
	sid := item.SessionID
	if sid == "" && capture.Descriptor != nil {
		sid = capture.Descriptor.SessionID
	}
	if sid == "" {
		return nil
	}
	s, err := p.sessions.Get(ctx, sid)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			p.logger.Warn("pipeline.session_load_failed", "session_id", sid, "error", err)
		}
		return nil
	}
	return s
}

// recordFailure applies the failure bookkeeping: increment, escalate to
// failed or reviewRequired, and evict the record outright once the
// failure threshold is exceeded. The capture row is removed with an
// evicted record so the backlog cannot resurrect it.
func (p *Processor) recordFailure(ctx context.Context, item *entity.ProcessedItem, capture *entity.CaptureInput, stage string, cause error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	item.FailureCount++
	item.AppendLog(now, stage+".failed", cause.Error())

	if item.FailureCount > constants.MaxFailureCount {
		p.logger.Warn("pipeline.item_evicted",
			"item_id", item.ID, "failures", item.FailureCount, "stage", stage)
		if err := p.items.Delete(ctx, item.ID); err != nil {
			p.logger.Error("pipeline.evict_failed", "item_id", item.ID, "error", err)
			return
		}
		if capture != nil {
			_ = p.captures.Delete(ctx, capture.ID)
		}
		return
	}

	if stage == "reasoning" {
		item.Status = constants.StatusReviewRequired
	} else {
		item.Status = constants.StatusFailed
	}
	p.logger.Warn("pipeline.item_failed",
		"item_id", item.ID, "stage", stage, "failures", item.FailureCount,
		"status", item.Status, "error", cause)
	if err := p.items.Save(ctx, item); err != nil {
		p.logger.Error("pipeline.failure_save_failed", "item_id", item.ID, "error", err)
	}
}

// spawnReasoning runs the second pass as a detached unit so the caller
// returns once provisional enrichment is done.
func (p *Processor) spawnReasoning(itemID, captureID uuid.UUID) {
	p.detached.Add(1)
	go func() {
		defer p.detached.Done()
		p.runReasoning(context.Background(), itemID, captureID)
	}()
}
