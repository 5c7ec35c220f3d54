package relevance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"obrahub/pkg/models"
)

type Handler struct {
	Scorer Scorer // nil means no scoring backend configured
}

func NewHandler(scorer Scorer) *Handler {
	return &Handler{Scorer: scorer}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/testimonials", h.list)
}

// list returns the testimonial catalog, relevance-ranked when a
// visitor activity description is given and a scorer is configured.
func (h *Handler) list(c *gin.Context) {
	activity := c.Query("activity")
	if activity == "" || h.Scorer == nil {
		ranked := Rank(c.Request.Context(), nil, "", models.Testimonials)
		c.JSON(http.StatusOK, gin.H{"items": ranked, "ranked": false})
		return
	}

	ranked := Rank(c.Request.Context(), h.Scorer, activity, models.Testimonials)
	c.JSON(http.StatusOK, gin.H{"items": ranked, "ranked": true})
}
