package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/reasoning"
)

// runReasoning is the non-blocking second pass: it assembles the
// accumulated context, condenses it if oversized, runs the analysis, and
// merges the output into the record. Success finalizes the record and
// deletes the originating capture; failure escalates per the state
// machine.
func (p *Processor) runReasoning(ctx context.Context, itemID, captureID uuid.UUID) {
	logger := p.logger.With("item_id", itemID)

	item, err := p.items.Get(ctx, itemID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			logger.Error("reasoning.load_failed", "error", err)
		}
		return
	}

	analysis, err := p.analyzeItem(ctx, item)
	if err != nil {
		logger.Warn("reasoning.pass_failed", "error", err)
		p.recordFailure(ctx, item, &entity.CaptureInput{ID: captureID}, "reasoning", err)
		return
	}

	p.mu.Lock()
	mergeAnalysis(item, analysis)
	now := time.Now()
	item.LastProcessed = &now
	// a place conflict flagged during enrichment survives the second pass
	if item.Status != constants.StatusReviewRequired {
		item.Status = constants.StatusReady
	}
	item.FailureCount = 0
	item.AppendLog(now, "reasoning.done", "")
	err = p.items.Save(ctx, item)
	p.mu.Unlock()
	if err != nil {
		logger.Error("reasoning.save_failed", "error", err)
		return
	}

	// durability contract: the capture row outlives everything up to here
	if err := p.captures.Delete(ctx, captureID); err != nil {
		logger.Warn("reasoning.capture_delete_failed", "capture_id", captureID, "error", err)
	}

	if p.handoff != nil && item.SessionID != "" {
		if err := p.handoff.Attach(ctx, item); err != nil {
			logger.Warn("reasoning.session_attach_failed", "session_id", item.SessionID, "error", err)
		}
	}
	if p.bundle.Graph != nil {
		d := entity.ItemDescriptor{
			ID:         item.ID,
			URL:        item.URL,
			Title:      item.Title,
			Categories: item.Categories,
			Type:       item.EntityType,
			SessionID:  item.SessionID,
			Purposes:   item.Purposes,
		}
		if err := p.bundle.Graph.Index(ctx, d); err != nil {
			logger.Warn("reasoning.graph_index_failed", "error", err)
		}
	}
	logger.Info("reasoning.finalized", "status", item.Status)
}

// analyzeItem builds the reasoning request and runs it, condensing
// oversized context through concurrent chunk summaries first.
func (p *Processor) analyzeItem(ctx context.Context, item *entity.ProcessedItem) (reasoning.Analysis, error) {
	text := p.accumulatedContext(item)
	if len(text) > p.chunkCfg.ChunkChars {
		condensed, err := p.condense(ctx, text)
		if err != nil {
			return reasoning.Analysis{}, fmt.Errorf("condense context: %w", err)
		}
		text = condensed
	}

	req := reasoning.AnalyzeRequest{
		Text:       text,
		URL:        item.URL,
		Modality:   item.Modality,
		EntityHint: item.EntityType,
	}
	if item.Place != nil && !item.Place.IsHome() {
		req.PlaceName = item.Place.Name
		req.PlaceAddress = item.Place.Address
	}
	if item.Weather != nil {
		req.Weather = fmt.Sprintf("%s, %.0f°C", item.Weather.Condition, item.Weather.TemperatureC)
	}
	if item.Activity != nil {
		req.Activity = item.Activity.Type
	}
	if item.SessionID != "" {
		if s, err := p.sessions.Get(ctx, item.SessionID); err == nil {
			req.SessionTitle = scrubHome(s.Title)
		}
		req.SiblingSummaries = p.siblingSummaries(ctx, item)
	}

	analysis, _, err := p.reason.Analyze(ctx, req)
	return analysis, err
}

// accumulatedContext concatenates every textual signal the providers
// produced, with Home tokens scrubbed so the model is not biased toward
// generic home-based inferences.
func (p *Processor) accumulatedContext(item *entity.ProcessedItem) string {
	var b strings.Builder
	if item.Title != "" {
		b.WriteString(item.Title)
		b.WriteString("\n")
	}
	if item.Summary != "" {
		b.WriteString(item.Summary)
		b.WriteString("\n")
	}
	if item.Place != nil && !item.Place.IsHome() && item.Place.Name != "" {
		b.WriteString("Location: ")
		b.WriteString(item.Place.Name)
		b.WriteString("\n")
	}
	if item.Web != nil && item.Web.ExtractedText != "" {
		b.WriteString(item.Web.ExtractedText)
		b.WriteString("\n")
	}
	if item.Document != nil && item.Document.Text != "" {
		b.WriteString(item.Document.Text)
		b.WriteString("\n")
	}
	if item.QRCode != nil && item.QRCode.Payload != "" {
		b.WriteString("QR payload: ")
		b.WriteString(item.QRCode.Payload)
		b.WriteString("\n")
	}
	return scrubHome(strings.TrimSpace(b.String()))
}

// siblingSummaries collects bounded summaries of completed items in the
// same session for continuity.
func (p *Processor) siblingSummaries(ctx context.Context, item *entity.ProcessedItem) []string {
	siblings, err := p.items.ListBySession(ctx, item.SessionID)
	if err != nil {
		p.logger.Warn("reasoning.siblings_failed", "session_id", item.SessionID, "error", err)
		return nil
	}
	limit := p.pipeCfg.SiblingContextLimit
	var out []string
	for _, s := range siblings {
		if s.ID == item.ID || s.Summary == "" {
			continue
		}
		out = append(out, scrubHome(s.Summary))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// condense chunks oversized context with overlap, summarizes each chunk
// concurrently, and joins the partial summaries into a condensed input.
func (p *Processor) condense(ctx context.Context, text string) (string, error) {
	chunks := reasoning.SplitChunks(text, p.chunkCfg.ChunkChars, p.chunkCfg.ChunkOverlap)
	summaries := make([]string, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			s, err := p.reason.Summarize(ctx, reasoning.SummarizeRequest{Additions: []string{chunk}})
			summaries[i], errs[i] = s, err
		}(i, chunk)
	}
	wg.Wait()

	var parts []string
	for i, s := range summaries {
		if errs[i] != nil {
			return "", errs[i]
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return text, nil
	}
	return strings.Join(parts, "\n"), nil
}

// mergeAnalysis folds the reasoning output into the record under the
// same strengthen-only discipline as provider results.
func mergeAnalysis(item *entity.ProcessedItem, a reasoning.Analysis) {
	setTitle(item, a.Title, false)
	if a.Summary != "" {
		item.Summary = a.Summary
	}
	if item.EntityType == "" {
		item.EntityType = a.EntityType
	}
	item.AddTags(a.Tags...)
	item.AddCategories(a.Categories...)
	item.AddPurposes(a.Purposes...)
	item.AddQuestions(a.Questions...)
	mergeStatements(item, a.Statements)
	if item.Price == 0 && a.Price > 0 {
		item.Price = a.Price
	}
	if item.Rating == 0 && a.Rating > 0 {
		item.Rating = a.Rating
	}
}

// mergeStatements unions the inferred statements in, keeping one
// statement per intent text. Visual evidence outranks location evidence:
// a visual statement displaces a location-grounded one with the same
// text, and a location statement never displaces a visual one.
func mergeStatements(item *entity.ProcessedItem, incoming []reasoning.Statement) {
	for _, in := range incoming {
		text := strings.TrimSpace(in.Text)
		if text == "" {
			continue
		}
		matched := false
		for i, have := range item.Statements {
			if !strings.EqualFold(have.Text, text) {
				continue
			}
			matched = true
			if in.Evidence == entity.EvidenceVisual && have.Evidence != entity.EvidenceVisual {
				item.Statements[i] = entity.Statement{Text: text, Evidence: entity.EvidenceVisual}
			}
			break
		}
		if !matched {
			item.Statements = append(item.Statements, entity.Statement{Text: text, Evidence: in.Evidence})
		}
	}
}

// scrubHome removes the generic home placeholder token from a context
// string.
func scrubHome(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(strings.ReplaceAll(s, entity.HomeLabel, ""))
}
