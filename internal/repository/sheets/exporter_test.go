package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mamadbah2/gildedrose/internal/domain/models"
)

type mockAppender struct {
	sheetRange string
	rows       [][]interface{}
	err        error
}

func (m *mockAppender) AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error {
	m.sheetRange = sheetRange
	m.rows = rows
	return m.err
}

func TestExportSnapshot(t *testing.T) {
	appender := &mockAppender{}
	exporter := NewExporter(appender)

	snapshot := models.Snapshot{
		Day:  3,
		Date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Items: []models.Item{
			{Name: "Aged Brie", SellIn: -1, Quality: 4},
			{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80},
		},
	}

	if err := exporter.ExportSnapshot(context.Background(), snapshot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appender.sheetRange != "Inventory!A:E" {
		t.Errorf("expected Inventory!A:E, got %s", appender.sheetRange)
	}
	if len(appender.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(appender.rows))
	}

	row := appender.rows[1]
	if row[0] != "2026-10-19" || row[1] != 3 || row[2] != "Sulfuras, Hand of Ragnaros" || row[3] != 0 || row[4] != 80 {
		t.Errorf("unexpected row: %v", row)
	}
}

func TestExportSnapshot_Error(t *testing.T) {
	appender := &mockAppender{err: errors.New("quota exceeded")}
	exporter := NewExporter(appender)

	err := exporter.ExportSnapshot(context.Background(), models.Snapshot{Items: []models.Item{{Name: "x"}}})
	if err == nil {
		t.Error("expected error")
	}
}
