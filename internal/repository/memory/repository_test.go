package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/mamadbah2/gildedrose/internal/domain/models"
	"github.com/mamadbah2/gildedrose/internal/repository"
)

func TestRepository_AddListGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	err := repo.AddItems(ctx,
		models.Item{ID: "a", Name: "Aged Brie", SellIn: 2, Quality: 0},
		models.Item{ID: "b", Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := repo.ListItems(ctx)
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("unexpected items: %v", items)
	}

	item, err := repo.GetItem(ctx, "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Elixir of the Mongoose" {
		t.Errorf("expected Elixir of the Mongoose, got %s", item.Name)
	}

	if _, err := repo.GetItem(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	repo.AddItems(ctx, models.Item{ID: "a", Name: "Aged Brie", SellIn: 2, Quality: 0})

	items, _ := repo.ListItems(ctx)
	items[0].Quality = 40

	stored, _ := repo.GetItem(ctx, "a")
	if stored.Quality != 0 {
		t.Errorf("expected stored quality 0, got %d", stored.Quality)
	}
}

func TestRepository_SaveItems(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	repo.AddItems(ctx, models.Item{ID: "a", Name: "Aged Brie", SellIn: 2, Quality: 0})

	err := repo.SaveItems(ctx, []models.Item{
		{ID: "a", Name: "renamed", SellIn: 1, Quality: 1},
		{ID: "ghost", SellIn: 9, Quality: 9},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := repo.ListItems(ctx)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].SellIn != 1 || items[0].Quality != 1 || items[0].Name != "Aged Brie" {
		t.Errorf("unexpected item after save: %v", items[0])
	}
}

func TestRepository_LatestSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	latest, err := repo.LatestSnapshot(ctx)
	if err != nil || latest != nil {
		t.Fatalf("expected no snapshot, got %v, %v", latest, err)
	}

	repo.SaveSnapshot(ctx, models.Snapshot{Day: 0})
	repo.SaveSnapshot(ctx, models.Snapshot{Day: 2})
	repo.SaveSnapshot(ctx, models.Snapshot{Day: 1})

	latest, _ = repo.LatestSnapshot(ctx)
	if latest == nil || latest.Day != 2 {
		t.Errorf("expected day 2, got %v", latest)
	}
}
