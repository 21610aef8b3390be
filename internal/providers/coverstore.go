package providers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalCoverStore copies cover image assets into a flat directory under
// the service's data root. Refs may be local paths or http(s) URLs.
type LocalCoverStore struct {
	dir    string
	client *http.Client
	logger *slog.Logger
}

func NewLocalCoverStore(dir string, logger *slog.Logger) *LocalCoverStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalCoverStore{
		dir:    dir,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

func (s *LocalCoverStore) Persist(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create cover dir: %w", err)
	}

	ext := filepath.Ext(ref)
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}
	dest := filepath.Join(s.dir, uuid.NewString()+ext)

	var src io.ReadCloser
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return "", err
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return "", fmt.Errorf("fetch cover %s: %w", ref, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return "", fmt.Errorf("fetch cover %s: status %d", ref, resp.StatusCode)
		}
		src = resp.Body
	} else {
		f, err := os.Open(ref)
		if err != nil {
			return "", fmt.Errorf("open cover %s: %w", ref, err)
		}
		src = f
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("write cover: %w", err)
	}
	s.logger.Debug("cover.persisted", "ref", ref, "path", dest)
	return dest, nil
}
