package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/gildedrose/internal/config"
	"github.com/mamadbah2/gildedrose/internal/domain/models"
	"github.com/mamadbah2/gildedrose/internal/service/reporting"
	"github.com/mamadbah2/gildedrose/internal/service/stock"
	"github.com/mamadbah2/gildedrose/internal/service/whatsapp"
)

const tickTimeout = 2 * time.Minute

// Advancer applies one day to the inventory.
type Advancer interface {
	AdvanceDay(ctx context.Context) (models.Snapshot, error)
}

// Scheduler ticks the inventory once per configured period.
type Scheduler struct {
	cron         *cron.Cron
	schedule     string
	stock        Advancer
	messagingSvc whatsapp.MessagingService
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. messagingSvc may be nil to skip reports.
func NewScheduler(cfg config.ReportingConfig, stockSvc Advancer, messagingSvc whatsapp.MessagingService, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}
	if _, err := cron.ParseStandard(cfg.CronSchedule); err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", cfg.CronSchedule, err)
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		schedule:     cfg.CronSchedule,
		stock:        stockSvc,
		messagingSvc: messagingSvc,
		logger:       logger,
	}, nil
}

// Start registers the daily tick and starts the scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runTick); err != nil {
		return fmt.Errorf("schedule daily tick: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("schedule", s.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runTick() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	snapshot, err := s.stock.AdvanceDay(ctx)
	if errors.Is(err, stock.ErrAlreadyAdvanced) {
		s.logger.Info("day already applied by another instance")
		return
	}
	if err != nil {
		s.logger.Error("failed to advance inventory", zap.Error(err))
		return
	}

	if s.messagingSvc == nil {
		return
	}

	req := models.OutboundMessageRequest{Message: reporting.Message(snapshot)}
	if err := s.messagingSvc.SendOutbound(ctx, req); err != nil {
		s.logger.Error("failed to send daily report", zap.Int("day", snapshot.Day), zap.Error(err))
	} else {
		s.logger.Info("daily report sent", zap.Int("day", snapshot.Day))
	}
}
