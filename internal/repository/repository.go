// Package repository defines the storage port shared by the inventory adapters.
package repository

import (
	"context"
	"errors"

	"github.com/mamadbah2/gildedrose/internal/domain/models"
)

// ErrNotFound is returned when an item lookup matches nothing.
var ErrNotFound = errors.New("item not found")

// Repository persists items and the snapshots taken after each day.
type Repository interface {
	// ListItems returns every item in insertion order.
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id string) (models.Item, error)
	AddItems(ctx context.Context, items ...models.Item) error
	// SaveItems writes back sellIn and quality for items that already exist.
	SaveItems(ctx context.Context, items []models.Item) error

	SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error
	// LatestSnapshot returns nil when no day has been recorded yet.
	LatestSnapshot(ctx context.Context) (*models.Snapshot, error)
}
