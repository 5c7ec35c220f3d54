package report

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"obrahub/internal/search"
	"obrahub/pkg/models"
)

// CardSource provides the current aggregated collection.
type CardSource interface {
	Cards() []models.Card
}

type Handler struct {
	Source CardSource
	Gen    *Generator
}

func NewHandler(source CardSource, gen *Generator) *Handler {
	return &Handler{Source: source, Gen: gen}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/projects.pdf", h.projects)
	rg.GET("/reports/duplicates.pdf", h.duplicates)
}

// projects serves the project list. Optional parameters narrow the
// scope: board keeps one board's cards, q applies the search engine
// first so the report matches the active filtered view. Scoping uses
// Match, not Filter: a query equal to one card's exact name should
// report that card, not collapse to an empty document.
func (h *Handler) projects(c *gin.Context) {
	cards := h.Source.Cards()

	query := c.Query("q")
	if query != "" {
		results := search.Match(query, cards)
		cards = make([]models.Card, len(results))
		for i, r := range results {
			cards[i] = r.Card
		}
	}

	pdf, err := h.Gen.ProjectList(Scope{
		BoardName: c.Query("board"),
		Query:     query,
		Cards:     cards,
	})
	if err != nil {
		log.Printf("project report failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report generation failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="proyectos.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) duplicates(c *gin.Context) {
	pdf, err := h.Gen.Duplicates(h.Source.Cards())
	if errors.Is(err, ErrNoDuplicates) {
		// Informational outcome, not a failure.
		c.JSON(http.StatusOK, gin.H{"message": "no se encontraron códigos duplicados"})
		return
	}
	if err != nil {
		log.Printf("duplicates report failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report generation failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="proyectos-duplicados.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
