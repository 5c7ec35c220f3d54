package project

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cuencas", h.listCuencas)
	rg.POST("/projects", h.create)
}

func (h *Handler) listCuencas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": Cuencas})
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and cuenca are required"})
		return
	}

	card, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		if _, ok := err.(*ErrUnknownCuenca); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cuenca"})
			return
		}
		log.Printf("project create failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "project created",
		"card":     card,
		"card_url": card.URL,
	})
}
