package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/gildedrose/internal/domain/models"
	"github.com/mamadbah2/gildedrose/internal/service/reporting"
	"github.com/mamadbah2/gildedrose/internal/service/stock"
	"github.com/mamadbah2/gildedrose/internal/service/whatsapp"
)

// InventoryService is the part of the stock service exposed over HTTP.
type InventoryService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id string) (models.Item, error)
	AddItem(ctx context.Context, name string, sellIn, quality int) (models.Item, error)
	AdvanceDay(ctx context.Context) (models.Snapshot, error)
	ForceAdvance(ctx context.Context) (models.Snapshot, error)
	Simulate(ctx context.Context, days int) ([]models.Snapshot, error)
	Latest(ctx context.Context) (models.Snapshot, error)
	Current(ctx context.Context) (models.Snapshot, error)
}

// InventoryHandler serves the inventory API.
type InventoryHandler struct {
	svc       InventoryService
	messaging whatsapp.MessagingService
	logger    *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter. messaging may be nil.
func NewInventoryHandler(svc InventoryService, messaging whatsapp.MessagingService, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{svc: svc, messaging: messaging, logger: logger}
}

// ListItems returns the whole inventory.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.svc.ListItems(c.Request.Context())
	if err != nil {
		h.fail(c, "list items", err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	c.JSON(http.StatusOK, items)
}

// GetItem returns one item by id.
func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.svc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem stocks a new item.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid item payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.svc.AddItem(c.Request.Context(), req.Name, *req.SellIn, *req.Quality)
	if err != nil {
		h.fail(c, "create item", err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// AdvanceDay applies one day. ?force=true skips the once-per-day guard.
func (h *InventoryHandler) AdvanceDay(c *gin.Context) {
	advance := h.svc.AdvanceDay
	if force, _ := strconv.ParseBool(c.Query("force")); force {
		advance = h.svc.ForceAdvance
	}

	snapshot, err := advance(c.Request.Context())
	if err != nil {
		h.fail(c, "advance day", err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// LatestDay returns the last recorded snapshot.
func (h *InventoryHandler) LatestDay(c *gin.Context) {
	snapshot, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		h.fail(c, "latest day", err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Simulate projects the inventory ?days=N ahead without storing the result.
func (h *InventoryHandler) Simulate(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
		return
	}

	projection, err := h.svc.Simulate(c.Request.Context(), days)
	if err != nil {
		h.fail(c, "simulate", err)
		return
	}
	c.JSON(http.StatusOK, projection)
}

// Report renders the current inventory as plain text.
func (h *InventoryHandler) Report(c *gin.Context) {
	current, err := h.svc.Current(c.Request.Context())
	if err != nil {
		h.fail(c, "report", err)
		return
	}
	c.String(http.StatusOK, reporting.FormatDay(current.Day, current.Items))
}

// SendReport pushes the current report over WhatsApp.
func (h *InventoryHandler) SendReport(c *gin.Context) {
	if h.messaging == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "notifications are disabled"})
		return
	}

	var req models.OutboundMessageRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("invalid outbound payload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	current, err := h.svc.Current(c.Request.Context())
	if err != nil {
		h.fail(c, "send report", err)
		return
	}
	if req.Message == "" {
		req.Message = reporting.Message(current)
	}

	if err := h.messaging.SendOutbound(c.Request.Context(), req); err != nil {
		if errors.Is(err, whatsapp.ErrNoRecipient) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed sending report", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to send message"})
		return
	}

	c.Status(http.StatusAccepted)
}

func (h *InventoryHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, stock.ErrInvalidItem), errors.Is(err, stock.ErrInvalidDays):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, stock.ErrNotFound), errors.Is(err, stock.ErrNoHistory):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, stock.ErrAlreadyAdvanced):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed", zap.String("op", op), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
