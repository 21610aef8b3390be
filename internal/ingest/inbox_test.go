package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/repository/repotest"
)

func newTestInbox(t *testing.T) (*Inbox, *repotest.MemCaptures) {
	t.Helper()
	captures := repotest.NewMemCaptures()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewInbox(captures, logger), captures
}

func writeDrop(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestIngestFile(t *testing.T) {
	in, captures := newTestInbox(t)
	dir := t.TempDir()
	path := writeDrop(t, dir, "drop.json", `{
		"url": "https://example.com/article",
		"source": "share-sheet",
		"descriptor": {"title": "An Article", "session_id": "walk-1"}
	}`)

	c, err := in.IngestFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/article", c.URL)
	assert.Equal(t, string(constants.InputWeb), c.InputType, "type inferred from the URL")
	assert.False(t, c.CreatedAt.IsZero())
	require.NotNil(t, c.Descriptor)
	assert.Equal(t, "An Article", c.Descriptor.Title)
	assert.Equal(t, "walk-1", c.Descriptor.SessionID)

	stored, err := captures.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.URL, stored.URL)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "the file is consumed once the row is durable")
}

func TestIngestFile_InferredTypes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"url is web", `{"url":"https://example.com"}`, string(constants.InputWeb)},
		{"payload path is image", `{"payload_path":"/tmp/pic.jpg"}`, string(constants.InputImage)},
		{"plain text", `{"text":"remember the milk"}`, string(constants.InputText)},
		{"explicit type wins", `{"text":"4006381333931","input_type":"PRODUCT"}`, string(constants.InputProduct)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _ := newTestInbox(t)
			path := writeDrop(t, t.TempDir(), "d.json", tt.body)
			c, err := in.IngestFile(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.InputType)
		})
	}
}

func TestIngestFile_BadJSON(t *testing.T) {
	in, captures := newTestInbox(t)
	path := writeDrop(t, t.TempDir(), "broken.json", `{not json`)

	_, err := in.IngestFile(context.Background(), path)
	assert.Error(t, err)

	pending, err := captures.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "an unreadable file is left for inspection")
}

func TestScanRoots(t *testing.T) {
	in, captures := newTestInbox(t)
	root := t.TempDir()

	writeDrop(t, root, "a.json", `{"text":"one"}`)
	writeDrop(t, root, "b.JSON", `{"text":"two"}`)
	writeDrop(t, root, "notes.txt", `not a capture`)
	writeDrop(t, root, ".hidden.json", `{"text":"skipped"}`)

	sub := filepath.Join(root, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeDrop(t, sub, "c.json", `{"text":"three"}`)

	hiddenDir := filepath.Join(root, ".trash")
	require.NoError(t, os.MkdirAll(hiddenDir, 0o755))
	writeDrop(t, hiddenDir, "d.json", `{"text":"skipped too"}`)

	count, err := in.ScanRoots(context.Background(), []string{root})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	pending, err := captures.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestAllowedExtAndIsHidden(t *testing.T) {
	assert.True(t, AllowedExt("/inbox/a.json"))
	assert.True(t, AllowedExt("/inbox/a.JSON"))
	assert.False(t, AllowedExt("/inbox/a.jpeg"))
	assert.True(t, IsHidden("/inbox/.DS_Store"))
	assert.False(t, IsHidden("/inbox/visible.json"))
}
