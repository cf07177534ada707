package history

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orensade/Intub/internal/assessment/recommendations"
	"github.com/orensade/Intub/internal/shared/server/respond"
)

// Handler exposes the history store to the presentation layer.
type Handler struct {
	Store *Store

	// nowMillis is swappable so tests can pin relative-time output.
	nowMillis func() int64
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{
		Store:     store,
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.list)
	rg.GET("/history/:id", h.get)
	rg.DELETE("/history/:id", h.delete)
	rg.DELETE("/history", h.clear)
}

type listItem struct {
	Item
	RelativeTime string `json:"relative_time"`
}

func (h *Handler) list(c *gin.Context) {
	now := h.nowMillis()
	items := h.Store.Items(c.Request.Context())

	out := make([]listItem, 0, len(items))
	for _, item := range items {
		out = append(out, listItem{Item: item, RelativeTime: FormatRelative(item.Timestamp, now)})
	}
	respond.OK(c, gin.H{"items": out, "count": len(out)})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	item, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "history item not found", nil)
		return
	}

	result := item.Result()
	explanations := make(map[string]string, len(result.Concerns))
	for _, concern := range result.Concerns {
		explanations[concern] = recommendations.Explain(concern)
	}

	respond.OK(c, gin.H{
		"item":            item,
		"relative_time":   FormatRelative(item.Timestamp, h.nowMillis()),
		"recommendations": recommendations.Compose(result.Concerns, result.RiskCategory),
		"explanations":    explanations,
	})
}

func (h *Handler) delete(c *gin.Context) {
	// Deleting an absent id is a no-op, never an error.
	h.Store.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) clear(c *gin.Context) {
	h.Store.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}
