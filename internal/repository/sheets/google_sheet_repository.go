package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/gildedrose/internal/config"
	"github.com/mamadbah2/gildedrose/internal/domain/models"
)

const (
	inventoryRange = "Inventory!A:E"
	dateLayout     = "2006-01-02"
)

// Appender is the subset of the Sheets API the exporter needs.
type Appender interface {
	AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error
}

// GoogleSheetRepository appends rows through the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendRows appends the provided rows to the supplied sheet range.
func (r *GoogleSheetRepository) AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}
	if len(rows) == 0 {
		return nil
	}

	payload := &sheetsapi.ValueRange{Values: rows}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append rows into range %s: %w", sheetRange, err)
	}

	r.logger.Debug("rows appended to sheet", zap.String("range", sheetRange), zap.Int("rows", len(rows)))
	return nil
}

// Exporter writes one row per item for every snapshot.
type Exporter struct {
	sheet Appender
}

func NewExporter(sheet Appender) *Exporter {
	return &Exporter{sheet: sheet}
}

// ExportSnapshot appends date, day, name, sellIn and quality for each item.
func (e *Exporter) ExportSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	return e.sheet.AppendRows(ctx, inventoryRange, SnapshotRows(snapshot))
}

// SnapshotRows flattens a snapshot into sheet rows.
func SnapshotRows(snapshot models.Snapshot) [][]interface{} {
	date := snapshot.Date.Format(dateLayout)
	rows := make([][]interface{}, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		rows = append(rows, []interface{}{date, snapshot.Day, item.Name, item.SellIn, item.Quality})
	}
	return rows
}
