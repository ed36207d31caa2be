package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/club-passport/internal/model"
	"github.com/iliyamo/club-passport/internal/repository"
)

// eventCacheKey holds the serialized event list in redis. There is only one
// list, so a single key with delete-on-write invalidation is enough.
const eventCacheKey = "events:all"

// EventHandler serves the event catalog. Cache may be nil, in which case
// every list request goes straight to the database.
type EventHandler struct {
	Events   *repository.EventRepo
	Cache    *redis.Client
	CacheTTL time.Duration
}

func NewEventHandler(events *repository.EventRepo, cache *redis.Client, ttl time.Duration) *EventHandler {
	return &EventHandler{Events: events, Cache: cache, CacheTTL: ttl}
}

// List returns every event. Any authenticated role may call it. Results are
// cached in redis for a short TTL; cache failures fall through to the
// database silently.
func (h *EventHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if h.Cache != nil && h.CacheTTL > 0 {
		if cached, err := h.Cache.Get(ctx, eventCacheKey).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}
	}

	events, err := h.Events.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if h.Cache != nil && h.CacheTTL > 0 {
		if body, err := json.Marshal(events); err == nil {
			_ = h.Cache.Set(ctx, eventCacheKey, body, h.CacheTTL).Err()
		}
	}
	return c.JSON(http.StatusOK, events)
}

type createEventReq struct {
	Title       string `json:"title"`
	Datetime    string `json:"datetime"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// Create inserts a new event and returns its id. Restricted to admin and
// chairman by the route's operation gate. Beyond requiring a title and a
// datetime to be present, nothing is validated: datetime and category are
// free-form strings by contract.
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Datetime) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and datetime are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev := &model.Event{
		Title:       req.Title,
		Datetime:    req.Datetime,
		Category:    req.Category,
		Points:      req.Points,
		Description: req.Description,
	}
	if err := h.Events.Create(ctx, ev); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	// Drop the cached list so the next read sees the new event.
	if h.Cache != nil {
		_ = h.Cache.Del(ctx, eventCacheKey).Err()
	}

	return c.JSON(http.StatusOK, echo.Map{"id": ev.ID})
}
