package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"obrahub/internal/board"
	"obrahub/internal/contact"
	"obrahub/internal/project"
	"obrahub/internal/relevance"
	"obrahub/internal/report"
	"obrahub/internal/trello"
	"obrahub/internal/updates"
	"obrahub/pkg/utils"
)

func main() {
	trelloCfg := utils.LoadTrelloConfig()
	client, err := trello.NewClient(trelloCfg)
	if err != nil {
		log.Fatalf("trello client: %v", err)
	}

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	aggregator := board.NewAggregator(client)
	store := board.NewStore(aggregator, client)

	hub := updates.NewHub()
	router.GET("/ws", updates.WSHandler(hub, func() int { return len(store.Cards()) }))

	// Load the collection once up front; a failure is not fatal, the
	// API stays up with an empty collection until a refresh succeeds.
	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Refresh(startCtx); err != nil {
		log.Printf("initial card fetch failed: %v", err)
	}
	cancel()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"cards":      len(store.Cards()),
			"ws_clients": hub.Count(),
		})
	})

	api := router.Group("/api")

	boardHandler := board.NewHandler(store, client, hub)
	boardHandler.RegisterRoutes(api)

	reportHandler := report.NewHandler(store, report.NewGenerator())
	reportHandler.RegisterRoutes(api)

	projectSvc := project.NewService(client, trelloCfg.ProjectBoardID)
	project.NewHandler(projectSvc).RegisterRoutes(api)

	contact.NewHandler().RegisterRoutes(api)

	// Relevance ranking degrades to the neutral catalog order when no
	// scoring backend is configured.
	var scorer relevance.Scorer
	relCfg := utils.LoadRelevanceConfig()
	if relCfg.APIKey != "" {
		s, err := relevance.NewGenAIScorer(context.Background(), relCfg)
		if err != nil {
			log.Printf("relevance scorer unavailable: %v", err)
		} else {
			scorer = s
		}
	}
	relevance.NewHandler(scorer).RegisterRoutes(api)

	srvCfg := utils.LoadServerConfig()
	httpSrv := &http.Server{
		Addr:    srvCfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", srvCfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
