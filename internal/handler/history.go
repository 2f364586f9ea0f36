package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/thamir0022/hueify/internal/middleware"
    "github.com/thamir0022/hueify/internal/model"
    "github.com/thamir0022/hueify/internal/queue"
    "github.com/thamir0022/hueify/internal/repository"
)

// HistoryStore is the injected handle to the per-user color history.
// repository.HistoryRepo is the MySQL implementation. Save applies the
// length cap on every persist.
type HistoryStore interface {
    GetByUser(ctx context.Context, userID uint64) ([]string, error)
    Save(ctx context.Context, userID uint64, colors []string) ([]string, error)
}

// HistoryHandler serves the gated color-history endpoints. Publish, when
// non-nil, receives a ColorAddedEvent after each successful add; it runs
// best-effort and never affects the response.
type HistoryHandler struct {
    History HistoryStore
    Publish func(ctx context.Context, ev queue.ColorAddedEvent) error
}

func NewHistoryHandler(history HistoryStore) *HistoryHandler {
    return &HistoryHandler{History: history}
}

// AddColor validates the hex value, prepends it to the caller's history
// when not already present, and persists the record (created lazily on
// first use). Re-adding an existing color neither duplicates nor reorders
// the list. Returns the full current list.
func (h *HistoryHandler) AddColor(c echo.Context) error {
    uid, ok := middleware.CurrentUserID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID is required"})
    }

    var req struct {
        Hex string `json:"hex"`
    }
    if err := c.Bind(&req); err != nil || !model.HexPattern.MatchString(req.Hex) {
        return c.JSON(http.StatusBadRequest, echo.Map{
            "success": false,
            "error":   "A valid hex value is required.",
        })
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    colors, err := h.History.GetByUser(ctx, uid)
    if err != nil && !errors.Is(err, repository.ErrNotFound) {
        log.Printf("color history: load for user %d failed: %v", uid, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "success": false,
            "error":   "Failed to update color history.",
        })
    }

    hist := model.ColorHistory{UserID: uid, Colors: colors}
    changed := hist.Add(req.Hex)

    saved, err := h.History.Save(ctx, uid, hist.Colors)
    if err != nil {
        log.Printf("color history: save for user %d failed: %v", uid, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "success": false,
            "error":   "Failed to update color history.",
        })
    }

    if changed && h.Publish != nil {
        ev := queue.ColorAddedEvent{
            UserID:  uid,
            Hex:     req.Hex,
            Total:   len(saved),
            AddedAt: time.Now().UTC().Format(time.RFC3339),
        }
        // Fire and forget; broker trouble must not fail the request.
        go func() { _ = h.Publish(context.Background(), ev) }()
    }

    return c.JSON(http.StatusOK, echo.Map{
        "success": true,
        "message": "Color history updated successfully.",
        "data":    saved,
    })
}

// GetAllHistory returns the caller's ordered color list, 404 when the
// user has no history yet.
func (h *HistoryHandler) GetAllHistory(c echo.Context) error {
    uid, ok := middleware.CurrentUserID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "User ID is required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    colors, err := h.History.GetByUser(ctx, uid)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"message": "No color history found for this user."})
        }
        log.Printf("color history: fetch for user %d failed: %v", uid, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred while fetching color history."})
    }
    if len(colors) == 0 {
        return c.JSON(http.StatusNotFound, echo.Map{"message": "No color history found for this user."})
    }

    return c.JSON(http.StatusOK, echo.Map{"history": colors})
}
