package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/pipeline"
	"github.com/capturedesk/capturedesk/internal/repository"
)

// ProgressFunc reports bounded-reprocess progress per batch.
type ProgressFunc func(done, total int)

// LogFunc receives human-readable progress lines.
type LogFunc func(line string)

// Manager drains the durable capture backlog, recovers crash-interrupted
// work, and bounds bulk reprocessing. Durability comes from the capture
// rows themselves: a row is deleted only after its item completed, so
// re-walking undeleted rows is the sole recovery mechanism needed.
type Manager struct {
	captures repository.CaptureRepository
	items    repository.ItemRepository
	proc     *pipeline.Processor
	cfg      common.PipelineConfig
	logger   *slog.Logger

	mu          sync.Mutex
	drainCancel context.CancelFunc
	drainGen    int
}

func NewManager(
	captures repository.CaptureRepository,
	items repository.ItemRepository,
	proc *pipeline.Processor,
	cfg common.PipelineConfig,
	logger *slog.Logger,
) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		captures: captures,
		items:    items,
		proc:     proc,
		cfg:      cfg,
		logger:   logger,
	}
}

// DrainPending processes every stored capture one at a time, continuing
// past individual failures. Starting a new drain cancels any drain
// already running.
func (m *Manager) DrainPending(ctx context.Context) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	gen := m.swapDrain(cancel)
	defer m.clearDrain(gen, cancel)

	pending, err := m.captures.ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending captures: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}
	m.logger.Info("queue.drain_start", "pending", len(pending))

	processed := 0
	for _, c := range pending {
		if err := ctx.Err(); err != nil {
			m.logger.Info("queue.drain_cancelled", "processed", processed)
			return processed, err
		}
		if _, err := m.proc.Process(ctx, c); err != nil {
			// isolated: the failure is recorded on the item, the drain goes on
			m.logger.Warn("queue.drain_item_failed", "capture_id", c.ID, "error", err)
			continue
		}
		processed++
	}
	m.logger.Info("queue.drain_done", "processed", processed)
	return processed, nil
}

// ResumeInterrupted is the startup recovery pass: records stuck in
// processing past the cutoff are reset to queued, then every undeleted
// capture is re-walked through the processor.
func (m *Manager) ResumeInterrupted(ctx context.Context) error {
	cutoff := time.Now().Add(-m.cfg.StaleProcessingCutoff)
	reset, err := m.items.ResetStaleProcessing(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("reset stale processing: %w", err)
	}
	if reset > 0 {
		m.logger.Warn("queue.recovered_stale", "count", reset)
	}
	if _, err := m.DrainPending(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("recovery drain: %w", err)
	}
	return nil
}

// ProcessNow supersedes any running drain with a single high-priority
// capture, then resumes the drain in the background.
func (m *Manager) ProcessNow(ctx context.Context, capture *entity.CaptureInput) (*entity.ProcessedItem, error) {
	m.mu.Lock()
	if m.drainCancel != nil {
		m.drainCancel()
		m.drainCancel = nil
	}
	m.mu.Unlock()

	item, err := m.proc.Process(ctx, capture)
	if err != nil {
		return nil, err
	}

	go func() {
		if _, err := m.DrainPending(context.Background()); err != nil {
			m.logger.Warn("queue.resume_drain_failed", "error", err)
		}
	}()
	return item, nil
}

// ReprocessSince re-runs enrichment for every item created at or after
// the cutoff, in fixed-size concurrent batches to respect provider
// limits. Each batch worker runs its item fully inline, so at most
// batchSize enrichment and reasoning passes are in flight at once.
// Cancellation is cooperative, checked between batches.
func (m *Manager) ReprocessSince(ctx context.Context, cutoff time.Time, progress ProgressFunc, logf LogFunc) error {
	items, err := m.items.ListCreatedSince(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("list items since %s: %w", cutoff.Format(time.RFC3339), err)
	}
	total := len(items)
	if logf != nil {
		logf(fmt.Sprintf("reprocessing %d items since %s", total, cutoff.Format("2006-01-02")))
	}

	batchSize := m.cfg.ReprocessBatchSize
	if batchSize <= 0 {
		batchSize = 3
	}

	done := 0
	for start := 0; start < total; start += batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+batchSize, total)
		batch := items[start:end]

		var wg sync.WaitGroup
		for _, it := range batch {
			wg.Add(1)
			go func(it *entity.ProcessedItem) {
				defer wg.Done()
				capture := &entity.CaptureInput{
					ID:        it.ID,
					CreatedAt: it.CreatedAt,
					URL:       it.URL,
					InputType: it.Modality,
				}
				if _, err := m.proc.ProcessSync(ctx, capture); err != nil {
					m.logger.Warn("queue.reprocess_item_failed", "item_id", it.ID, "error", err)
				}
			}(it)
		}
		wg.Wait()

		done = end
		if progress != nil {
			progress(done, total)
		}
		if logf != nil {
			logf(fmt.Sprintf("batch complete: %d/%d", done, total))
		}
	}
	m.logger.Info("queue.reprocess_done", "total", total)
	return nil
}

// swapDrain installs a new drain, cancelling any previous one, and
// returns a generation token so clearDrain only clears its own entry.
func (m *Manager) swapDrain(cancel context.CancelFunc) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.drainCancel != nil {
		m.drainCancel()
	}
	m.drainGen++
	m.drainCancel = cancel
	return m.drainGen
}

func (m *Manager) clearDrain(gen int, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cancel()
	if m.drainGen == gen {
		m.drainCancel = nil
	}
}
