package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/repository"
)

// captureFile is the on-disk shape of one share-sheet style drop.
type captureFile struct {
	ID          string                 `json:"id,omitempty"`
	CreatedAt   time.Time              `json:"created_at,omitempty"`
	URL         string                 `json:"url,omitempty"`
	Text        string                 `json:"text,omitempty"`
	Source      string                 `json:"source,omitempty"`
	PayloadPath string                 `json:"payload_path,omitempty"`
	InputType   string                 `json:"input_type,omitempty"`
	Descriptor  *entity.ItemDescriptor `json:"descriptor,omitempty"`
}

// Inbox converts dropped capture files into durable capture rows. The
// file is removed only after its row is persisted; the row then carries
// the durability burden.
type Inbox struct {
	captures repository.CaptureRepository
	logger   *slog.Logger
}

func NewInbox(captures repository.CaptureRepository, logger *slog.Logger) *Inbox {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inbox{captures: captures, logger: logger}
}

// IngestFile reads one capture file, stores it as a capture row, and
// removes the file.
func (in *Inbox) IngestFile(ctx context.Context, path string) (*entity.CaptureInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture file %s: %w", path, err)
	}
	var cf captureFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("decode capture file %s: %w", path, err)
	}

	c := &entity.CaptureInput{
		CreatedAt:   cf.CreatedAt,
		URL:         cf.URL,
		Text:        cf.Text,
		Source:      cf.Source,
		PayloadPath: cf.PayloadPath,
		InputType:   cf.InputType,
		Descriptor:  cf.Descriptor,
	}
	if cf.ID != "" {
		if id, err := uuid.Parse(cf.ID); err == nil {
			c.ID = id
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.InputType == "" {
		c.InputType = inferInputType(c)
	}

	if err := in.captures.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("store capture %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		// the row exists; a leftover file just means a duplicate attempt
		// that the deterministic id will collapse
		in.logger.Warn("inbox.remove_failed", "path", path, "error", err)
	}
	in.logger.Info("inbox.ingested", "path", path, "capture_id", c.ID, "input_type", c.InputType)
	return c, nil
}

// ScanRoots walks the inbox roots once and ingests every capture file
// found, skipping hidden entries.
func (in *Inbox) ScanRoots(ctx context.Context, roots []string) (int, error) {
	count := 0
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if IsHidden(path) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !AllowedExt(path) {
				return nil
			}
			if _, err := in.IngestFile(ctx, path); err != nil {
				in.logger.Warn("inbox.scan_file_failed", "path", path, "error", err)
				return nil
			}
			count++
			return nil
		})
		if err != nil {
			return count, fmt.Errorf("scan inbox root %s: %w", root, err)
		}
	}
	return count, nil
}

func inferInputType(c *entity.CaptureInput) string {
	switch {
	case constants.IsEnrichableURL(c.URL):
		return string(constants.InputWeb)
	case c.PayloadPath != "":
		return string(constants.InputImage)
	default:
		return string(constants.InputText)
	}
}

// AllowedExt reports whether the path has a capture-file extension.
func AllowedExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
