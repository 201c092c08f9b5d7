package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mamadbah2/gildedrose/internal/config"
	"github.com/mamadbah2/gildedrose/internal/domain/models"
	"github.com/mamadbah2/gildedrose/internal/service/stock"
)

type mockAdvancer struct {
	calls    int
	snapshot models.Snapshot
	err      error
}

func (m *mockAdvancer) AdvanceDay(ctx context.Context) (models.Snapshot, error) {
	m.calls++
	return m.snapshot, m.err
}

type mockMessaging struct {
	sent []models.OutboundMessageRequest
}

func (m *mockMessaging) SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error {
	m.sent = append(m.sent, req)
	return nil
}

var validCfg = config.ReportingConfig{CronSchedule: "0 0 * * *", Timezone: "UTC"}

func TestNewScheduler_InvalidConfig(t *testing.T) {
	if _, err := NewScheduler(config.ReportingConfig{CronSchedule: "nope", Timezone: "UTC"}, &mockAdvancer{}, nil, nil); err == nil {
		t.Error("expected error for invalid schedule")
	}
	if _, err := NewScheduler(config.ReportingConfig{CronSchedule: "0 0 * * *", Timezone: "Nowhere/City"}, &mockAdvancer{}, nil, nil); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestRunTick_SendsReport(t *testing.T) {
	adv := &mockAdvancer{snapshot: models.Snapshot{Day: 3, Items: []models.Item{models.NewItem("Aged Brie", -1, 4)}}}
	msg := &mockMessaging{}

	s, err := NewScheduler(validCfg, adv, msg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.runTick()

	if adv.calls != 1 {
		t.Errorf("expected 1 advance, got %d", adv.calls)
	}
	if len(msg.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msg.sent))
	}
	if !strings.Contains(msg.sent[0].Message, "Inventory day 3") || !strings.Contains(msg.sent[0].Message, "Aged Brie, -1, 4") {
		t.Errorf("unexpected message %q", msg.sent[0].Message)
	}
}

func TestRunTick_AlreadyAdvanced(t *testing.T) {
	adv := &mockAdvancer{err: stock.ErrAlreadyAdvanced}
	msg := &mockMessaging{}

	s, _ := NewScheduler(validCfg, adv, msg, nil)
	s.runTick()

	if len(msg.sent) != 0 {
		t.Errorf("expected no message, got %d", len(msg.sent))
	}
}

func TestRunTick_Failure(t *testing.T) {
	adv := &mockAdvancer{err: errors.New("mongo down")}
	msg := &mockMessaging{}

	s, _ := NewScheduler(validCfg, adv, msg, nil)
	s.runTick()

	if len(msg.sent) != 0 {
		t.Errorf("expected no message, got %d", len(msg.sent))
	}
}

func TestRunTick_WithoutMessaging(t *testing.T) {
	adv := &mockAdvancer{}

	s, _ := NewScheduler(validCfg, adv, nil, nil)
	s.runTick()

	if adv.calls != 1 {
		t.Errorf("expected 1 advance, got %d", adv.calls)
	}
}

func TestStartStop(t *testing.T) {
	s, _ := NewScheduler(validCfg, &mockAdvancer{}, nil, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.cron.Entries()) != 1 {
		t.Errorf("expected 1 cron entry, got %d", len(s.cron.Entries()))
	}
	s.Stop()
}
