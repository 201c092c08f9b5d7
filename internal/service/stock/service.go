// Package stock runs the inventory day by day on top of a repository.
package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/gildedrose/internal/domain/models"
	"github.com/mamadbah2/gildedrose/internal/inventory"
	"github.com/mamadbah2/gildedrose/internal/repository"
)

const (
	dateLayout = "2006-01-02"

	// MaxSimulationDays bounds projections requested over HTTP.
	MaxSimulationDays = 365
)

var (
	ErrInvalidItem     = errors.New("invalid item")
	ErrInvalidDays     = errors.New("invalid number of days")
	ErrAlreadyAdvanced = errors.New("inventory already advanced today")
	ErrNoHistory       = errors.New("no inventory history yet")
	ErrNotFound        = repository.ErrNotFound
)

// Guard claims a calendar day so it is only applied once.
type Guard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// Exporter receives every snapshot after it has been stored.
type Exporter interface {
	ExportSnapshot(ctx context.Context, snapshot models.Snapshot) error
}

// Service owns the daily lifecycle of the inventory.
type Service struct {
	repo     repository.Repository
	guard    Guard
	exporter Exporter
	loc      *time.Location
	logger   *zap.Logger
	now      func() time.Time

	// serialises ticks and seeding within the process
	mu sync.Mutex
}

// NewService wires a stock service. guard and exporter are optional.
func NewService(repo repository.Repository, guard Guard, exporter Exporter, loc *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:     repo,
		guard:    guard,
		exporter: exporter,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// Seed stocks the given items when the inventory is empty and records day 0.
// It reports whether anything was inserted.
func (s *Service) Seed(ctx context.Context, items []models.Item) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.ListItems(ctx)
	if err != nil {
		return false, fmt.Errorf("list items: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Debug("inventory already stocked, skipping seed", zap.Int("items", len(existing)))
		return false, nil
	}

	seeded := make([]models.Item, len(items))
	for i, item := range items {
		item.ID = uuid.NewString()
		seeded[i] = item
	}

	if err := s.repo.AddItems(ctx, seeded...); err != nil {
		return false, fmt.Errorf("add items: %w", err)
	}

	if err := s.repo.SaveSnapshot(ctx, s.snapshot(0, seeded)); err != nil {
		return false, fmt.Errorf("save day 0 snapshot: %w", err)
	}

	s.logger.Info("inventory seeded", zap.Int("items", len(seeded)))
	return true, nil
}

// AddItem stocks a new item. Only the name is checked; any sellIn and quality are accepted.
func (s *Service) AddItem(ctx context.Context, name string, sellIn, quality int) (models.Item, error) {
	if strings.TrimSpace(name) == "" {
		return models.Item{}, fmt.Errorf("%w: name must not be empty", ErrInvalidItem)
	}

	item := models.NewItem(name, sellIn, quality)
	item.ID = uuid.NewString()

	if err := s.repo.AddItems(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("add item: %w", err)
	}

	s.logger.Info("item stocked",
		zap.String("id", item.ID),
		zap.String("name", item.Name),
		zap.Stringer("category", inventory.CategoryOf(item.Name)))
	return item, nil
}

// ListItems returns the current inventory.
func (s *Service) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.repo.ListItems(ctx)
}

// GetItem returns one item or ErrNotFound.
func (s *Service) GetItem(ctx context.Context, id string) (models.Item, error) {
	return s.repo.GetItem(ctx, id)
}

// AdvanceDay applies one day to the whole inventory, at most once per calendar day
// when a guard is configured.
func (s *Service) AdvanceDay(ctx context.Context) (models.Snapshot, error) {
	if s.guard == nil {
		return s.advance(ctx)
	}

	key := s.now().In(s.loc).Format(dateLayout)
	ok, err := s.guard.Acquire(ctx, key)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("acquire tick guard: %w", err)
	}
	if !ok {
		return models.Snapshot{}, ErrAlreadyAdvanced
	}

	snapshot, err := s.advance(ctx)
	if err != nil {
		if releaseErr := s.guard.Release(ctx, key); releaseErr != nil {
			s.logger.Error("failed to release tick guard", zap.String("key", key), zap.Error(releaseErr))
		}
		return models.Snapshot{}, err
	}
	return snapshot, nil
}

// ForceAdvance applies one day without consulting the guard.
func (s *Service) ForceAdvance(ctx context.Context) (models.Snapshot, error) {
	return s.advance(ctx)
}

func (s *Service) advance(ctx context.Context) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("list items: %w", err)
	}

	day, err := s.currentDay(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}

	inventory.UpdateQuality(items)

	if err := s.repo.SaveItems(ctx, items); err != nil {
		return models.Snapshot{}, fmt.Errorf("save items: %w", err)
	}

	snapshot := s.snapshot(day+1, items)
	if err := s.repo.SaveSnapshot(ctx, snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}

	if s.exporter != nil {
		if err := s.exporter.ExportSnapshot(ctx, snapshot); err != nil {
			s.logger.Warn("failed to export snapshot", zap.Int("day", snapshot.Day), zap.Error(err))
		}
	}

	s.logger.Info("inventory advanced", zap.Int("day", snapshot.Day), zap.Int("items", len(items)))
	return snapshot, nil
}

// Simulate projects the inventory the given number of days ahead without storing anything.
func (s *Service) Simulate(ctx context.Context, days int) ([]models.Snapshot, error) {
	if days < 1 || days > MaxSimulationDays {
		return nil, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidDays, MaxSimulationDays)
	}

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	day, err := s.currentDay(ctx)
	if err != nil {
		return nil, err
	}

	base := s.now().In(s.loc)
	projection := make([]models.Snapshot, 0, days)
	for i := 1; i <= days; i++ {
		inventory.UpdateQuality(items)
		projection = append(projection, models.Snapshot{
			Day:   day + i,
			Date:  startOfDay(base.AddDate(0, 0, i)),
			Items: append([]models.Item(nil), items...),
		})
	}
	return projection, nil
}

// Latest returns the most recent stored snapshot, or ErrNoHistory.
func (s *Service) Latest(ctx context.Context) (models.Snapshot, error) {
	latest, err := s.repo.LatestSnapshot(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("latest snapshot: %w", err)
	}
	if latest == nil {
		return models.Snapshot{}, ErrNoHistory
	}
	return *latest, nil
}

// Current returns the live inventory labelled with the current day.
func (s *Service) Current(ctx context.Context) (models.Snapshot, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("list items: %w", err)
	}

	day, err := s.currentDay(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	return s.snapshot(day, items), nil
}

func (s *Service) currentDay(ctx context.Context) (int, error) {
	latest, err := s.repo.LatestSnapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("latest snapshot: %w", err)
	}
	if latest == nil {
		return 0, nil
	}
	return latest.Day, nil
}

func (s *Service) snapshot(day int, items []models.Item) models.Snapshot {
	now := s.now().In(s.loc)
	return models.Snapshot{
		Day:       day,
		Date:      startOfDay(now),
		Items:     append([]models.Item(nil), items...),
		CreatedAt: now.UTC(),
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
