package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/repository/repotest"
)

func newTestService(t *testing.T) (*Service, *repotest.MemItems) {
	t.Helper()
	items := repotest.NewMemItems()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(items, logger), items
}

func seedItem(t *testing.T, items *repotest.MemItems, title string, status constants.ItemStatus, createdAt time.Time) {
	t.Helper()
	require.NoError(t, items.Create(context.Background(), &entity.ProcessedItem{
		ID:         uuid.New(),
		Title:      title,
		Status:     status,
		CreatedAt:  createdAt,
		EntityType: "place",
		Tags:       []string{"coffee", "wifi"},
		SessionID:  "walk-1",
		Summary:    "an espresso stop",
		URL:        "https://example.com",
		Place:      &entity.PlaceContext{Name: "Foo Cafe"},
	}))
}

func sheetRows(t *testing.T, xlsx []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Items")
	require.NoError(t, err)
	return rows
}

func TestExportItemsXLSX(t *testing.T) {
	svc, items := newTestService(t)
	now := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)
	seedItem(t, items, "Foo Cafe", constants.StatusReady, now)

	xlsx, err := svc.ExportItemsXLSX(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	rows := sheetRows(t, xlsx)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"Created", "Title", "Status", "Type", "Tags", "Place", "Session", "Summary", "URL",
	}, rows[0])
	assert.Equal(t, "2026-01-05 14:30", rows[1][0])
	assert.Equal(t, "Foo Cafe", rows[1][1])
	assert.Equal(t, "READY", rows[1][2])
	assert.Equal(t, "coffee, wifi", rows[1][4])
	assert.Equal(t, "Foo Cafe", rows[1][5])
}

func TestExportItemsXLSX_StatusFilter(t *testing.T) {
	svc, items := newTestService(t)
	now := time.Now()
	seedItem(t, items, "ready one", constants.StatusReady, now)
	seedItem(t, items, "failed one", constants.StatusFailed, now)

	status := constants.StatusReady
	xlsx, err := svc.ExportItemsXLSX(context.Background(), &status, nil, nil)
	require.NoError(t, err)

	rows := sheetRows(t, xlsx)
	require.Len(t, rows, 2)
	assert.Equal(t, "ready one", rows[1][1])
}

func TestExportItemsXLSX_DateWindow(t *testing.T) {
	svc, items := newTestService(t)
	seedItem(t, items, "in range", constants.StatusReady, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
	seedItem(t, items, "too old", constants.StatusReady, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	xlsx, err := svc.ExportItemsXLSX(context.Background(), nil, &from, nil)
	require.NoError(t, err)

	rows := sheetRows(t, xlsx)
	require.Len(t, rows, 2)
	assert.Equal(t, "in range", rows[1][1])
}

func TestExportItemsXLSX_Empty(t *testing.T) {
	svc, _ := newTestService(t)
	xlsx, err := svc.ExportItemsXLSX(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	rows := sheetRows(t, xlsx)
	assert.Len(t, rows, 1, "header only")
}
