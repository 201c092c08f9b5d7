// Package memory is the in-process store used when no MongoDB URI is configured.
package memory

import (
	"context"
	"sync"

	"github.com/mamadbah2/gildedrose/internal/domain/models"
	"github.com/mamadbah2/gildedrose/internal/repository"
)

type Repository struct {
	mu        sync.RWMutex
	items     []models.Item
	index     map[string]int
	snapshots []models.Snapshot
}

func NewRepository() *Repository {
	return &Repository{index: make(map[string]int)}
}

func (r *Repository) ListItems(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Item(nil), r.items...), nil
}

func (r *Repository) GetItem(_ context.Context, id string) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return models.Item{}, repository.ErrNotFound
	}
	return r.items[i], nil
}

func (r *Repository) AddItems(_ context.Context, items ...models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.index[item.ID] = len(r.items)
		r.items = append(r.items, item)
	}
	return nil
}

func (r *Repository) SaveItems(_ context.Context, items []models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		i, ok := r.index[item.ID]
		if !ok {
			continue
		}
		r.items[i].SellIn = item.SellIn
		r.items[i].Quality = item.Quality
	}
	return nil
}

func (r *Repository) SaveSnapshot(_ context.Context, snapshot models.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot.Items = append([]models.Item(nil), snapshot.Items...)
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *Repository) LatestSnapshot(_ context.Context) (*models.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.snapshots) == 0 {
		return nil, nil
	}
	latest := r.snapshots[0]
	for _, s := range r.snapshots[1:] {
		if s.Day >= latest.Day {
			latest = s
		}
	}
	latest.Items = append([]models.Item(nil), latest.Items...)
	return &latest, nil
}
