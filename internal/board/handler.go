package board

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"obrahub/internal/search"
	"obrahub/internal/trello"
	"obrahub/internal/updates"
	"obrahub/pkg/models"
)

// FullGateway is everything the board handler proxies straight to the
// remote API (board metadata, comments, attachments).
type FullGateway interface {
	Gateway
	CardGateway
	Member(ctx context.Context) (string, error)
	Board(ctx context.Context, id string) (models.Board, error)
	BoardLabels(ctx context.Context, boardID string) ([]models.Label, error)
	Comments(ctx context.Context, cardID string) ([]models.Comment, error)
	AddComment(ctx context.Context, cardID, text string) (models.Comment, error)
	AddAttachment(ctx context.Context, cardID, name, url string) (models.Attachment, error)
	DeleteAttachment(ctx context.Context, cardID, attachmentID string) error
}

// Broadcaster pushes card-change events to live clients.
type Broadcaster interface {
	BroadcastJSON(v any)
}

type Handler struct {
	Store *Store
	Gw    FullGateway
	Hub   Broadcaster
}

func NewHandler(store *Store, gw FullGateway, hub Broadcaster) *Handler {
	return &Handler{Store: store, Gw: gw, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/verify", h.verify)
	rg.GET("/boards", h.listBoards)
	rg.GET("/boards/:id", h.getBoard)
	rg.GET("/boards/:id/labels", h.boardLabels)

	rg.GET("/cards", h.listCards)
	rg.POST("/cards/refresh", h.refresh)
	rg.GET("/cards/:id", h.getCard)
	rg.PATCH("/cards/:id", h.updateCard)
	rg.POST("/cards/:id/labels", h.addLabel)
	rg.DELETE("/cards/:id/labels/:label_id", h.removeLabel)
	rg.GET("/cards/:id/comments", h.listComments)
	rg.POST("/cards/:id/comments", h.addComment)
	rg.POST("/cards/:id/attachments", h.addAttachment)
	rg.DELETE("/cards/:id/attachments/:attachment_id", h.deleteAttachment)
}

// verify checks the configured credentials against the remote system
// and reports who they belong to.
func (h *Handler) verify(c *gin.Context) {
	name, err := h.Gw.Member(c.Request.Context())
	if err != nil {
		respondRemote(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": name})
}

func (h *Handler) listBoards(c *gin.Context) {
	boards, err := h.Gw.Boards(c.Request.Context())
	if err != nil {
		respondRemote(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": boards})
}

func (h *Handler) getBoard(c *gin.Context) {
	b, err := h.Gw.Board(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRemote(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) boardLabels(c *gin.Context) {
	labels, err := h.Gw.BoardLabels(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRemote(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": labels})
}

// listCards serves the aggregated collection. With a q (or open=true)
// parameter it runs the search engine and returns match-classified
// results instead of plain cards.
func (h *Handler) listCards(c *gin.Context) {
	cards := h.Store.Cards()

	query, hasQuery := c.GetQuery("q")
	open := parseBool(c.Query("open"))
	if !hasQuery && !open {
		c.JSON(http.StatusOK, gin.H{"total": len(cards), "items": cards})
		return
	}

	results := search.Filter(query, cards, open)
	if results == nil {
		results = []models.SearchResult{}
	}
	c.JSON(http.StatusOK, gin.H{"total": len(results), "query": query, "items": results})
}

func (h *Handler) refresh(c *gin.Context) {
	if err := h.Store.Refresh(c.Request.Context()); err != nil {
		respondRemote(c, err)
		return
	}
	h.broadcast(updates.CardEvent{Type: updates.EventRefreshed, At: time.Now().UTC()})
	c.JSON(http.StatusOK, gin.H{"total": len(h.Store.Cards())})
}

// getCard serves one card with its cover color resolved to display
// colors, so the frontend never has to know the palette.
func (h *Handler) getCard(c *gin.Context) {
	card, ok := h.Store.CardByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"card":        card,
		"cover_style": models.StyleForColor(card.Cover),
	})
}

type updateCardReq struct {
	Name  *string `json:"name"`
	Desc  *string `json:"desc"`
	Cover *string `json:"cover"`
}

func (h *Handler) updateCard(c *gin.Context) {
	var req updateCardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Name == nil && req.Desc == nil && req.Cover == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
		return
	}

	card, err := h.Store.UpdateCard(c.Request.Context(), c.Param("id"), trello.CardPatch{
		Name:  req.Name,
		Desc:  req.Desc,
		Cover: req.Cover,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.broadcast(updates.CardEvent{
		Type: updates.EventCardUpdated, CardID: card.ID, BoardID: card.BoardID, At: time.Now().UTC(),
	})
	c.JSON(http.StatusOK, card)
}

type labelReq struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *Handler) addLabel(c *gin.Context) {
	var req labelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label id required"})
		return
	}

	card, err := h.Store.AddLabel(c.Request.Context(), c.Param("id"), models.Label{
		ID: req.ID, Name: req.Name, Color: req.Color,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.broadcast(updates.CardEvent{
		Type: updates.EventCardUpdated, CardID: card.ID, BoardID: card.BoardID, At: time.Now().UTC(),
	})
	c.JSON(http.StatusOK, card)
}

func (h *Handler) removeLabel(c *gin.Context) {
	card, err := h.Store.RemoveLabel(c.Request.Context(), c.Param("id"), c.Param("label_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	h.broadcast(updates.CardEvent{
		Type: updates.EventCardUpdated, CardID: card.ID, BoardID: card.BoardID, At: time.Now().UTC(),
	})
	c.JSON(http.StatusOK, card)
}

func (h *Handler) listComments(c *gin.Context) {
	comments, err := h.Gw.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRemote(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": comments})
}

type commentReq struct {
	Text string `json:"text" binding:"required,min=1"`
}

func (h *Handler) addComment(c *gin.Context) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text required"})
		return
	}

	comment, err := h.Gw.AddComment(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		respondRemote(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

type attachmentReq struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required,url"`
}

func (h *Handler) addAttachment(c *gin.Context) {
	var req attachmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and url required"})
		return
	}

	cardID := c.Param("id")
	att, err := h.Gw.AddAttachment(c.Request.Context(), cardID, req.Name, req.URL)
	if err != nil {
		respondRemote(c, err)
		return
	}
	h.Store.ApplyAttachment(cardID, att)

	h.broadcast(updates.CardEvent{Type: updates.EventCardUpdated, CardID: cardID, At: time.Now().UTC()})
	c.JSON(http.StatusCreated, att)
}

func (h *Handler) deleteAttachment(c *gin.Context) {
	cardID := c.Param("id")
	attID := c.Param("attachment_id")

	if err := h.Gw.DeleteAttachment(c.Request.Context(), cardID, attID); err != nil {
		respondRemote(c, err)
		return
	}
	h.Store.DropAttachment(cardID, attID)

	h.broadcast(updates.CardEvent{Type: updates.EventCardUpdated, CardID: cardID, At: time.Now().UTC()})
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) broadcast(ev updates.CardEvent) {
	if h.Hub != nil {
		go h.Hub.BroadcastJSON(ev)
	}
}

// respondRemote maps gateway failures onto the error taxonomy: bad
// credentials get their own message, everything else surfaces only
// the numeric status (the body was already logged by the gateway).
func respondRemote(c *gin.Context, err error) {
	if errors.Is(err, trello.ErrInvalidCredentials) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "invalid Trello credentials, check your API key and token"})
		return
	}
	var re *trello.RemoteError
	if errors.As(err, &re) {
		c.JSON(http.StatusBadGateway, gin.H{"error": re.Error()})
		return
	}
	log.Printf("remote call failed: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "remote call failed"})
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, ErrCardNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	respondRemote(c, err)
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
