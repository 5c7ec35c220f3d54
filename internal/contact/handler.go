package contact

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type submission struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

// submit validates the contact form and records the submission in the
// log. There is no outbound mail; the portfolio page only needs the
// success acknowledgement.
func (h *Handler) submit(c *gin.Context) {
	var req submission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "name (min 2), valid email and message (min 10) are required",
		})
		return
	}

	id := uuid.NewString()
	log.Printf("contact submission %s from %s <%s>", id, req.Name, req.Email)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"message": "Message sent successfully.",
	})
}
