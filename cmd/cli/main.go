package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"obrahub/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type cardListResponse struct {
	Total int           `json:"total"`
	Items []models.Card `json:"items"`
}

type searchResponse struct {
	Total int                   `json:"total"`
	Query string                `json:"query"`
	Items []models.SearchResult `json:"items"`
}

func main() {
	global := flag.NewFlagSet("obrahub", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	client := &http.Client{Timeout: 30 * time.Second}

	switch args[0] {
	case "verify":
		handleVerify(ctx, client, *baseURL)
	case "boards":
		handleBoards(ctx, client, *baseURL)
	case "cards":
		handleCards(ctx, client, *baseURL, args[1:])
	case "report":
		handleReport(ctx, client, *baseURL, args[1:])
	case "duplicates":
		handleDuplicates(ctx, client, *baseURL, args[1:])
	case "refresh":
		handleRefresh(ctx, client, *baseURL)
	case "watch":
		handleWatch(*baseURL)
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleVerify(ctx context.Context, client *http.Client, baseURL string) {
	var resp struct {
		Member string `json:"member"`
	}
	if err := getJSON(ctx, client, baseURL+"/api/verify", &resp); err != nil {
		log.Fatalf("verify failed: %v", err)
	}
	fmt.Printf("connected as %s\n", resp.Member)
}

func handleBoards(ctx context.Context, client *http.Client, baseURL string) {
	var resp struct {
		Items []models.Board `json:"items"`
	}
	if err := getJSON(ctx, client, baseURL+"/api/boards", &resp); err != nil {
		log.Fatalf("boards failed: %v", err)
	}
	for _, b := range resp.Items {
		fmt.Printf("%s  %s\n", b.ID, b.Name)
	}
}

func handleCards(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("cards", flag.ExitOnError)
	query := fs.String("q", "", "search query")
	_ = fs.Parse(args)

	if *query == "" {
		var resp cardListResponse
		if err := getJSON(ctx, client, baseURL+"/api/cards", &resp); err != nil {
			log.Fatalf("cards failed: %v", err)
		}
		for _, card := range resp.Items {
			fmt.Printf("[%s] %s\n", card.BoardName, card.Name)
		}
		fmt.Printf("%d cards\n", resp.Total)
		return
	}

	u := baseURL + "/api/cards?q=" + url.QueryEscape(*query)
	var resp searchResponse
	if err := getJSON(ctx, client, u, &resp); err != nil {
		log.Fatalf("search failed: %v", err)
	}
	for _, r := range resp.Items {
		fmt.Printf("[%s] (%s) %s\n", r.Card.BoardName, r.Match, r.Card.Name)
	}
	fmt.Printf("%d matches\n", resp.Total)
}

func handleReport(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	board := fs.String("board", "", "narrow to one board name")
	query := fs.String("q", "", "narrow to the search-filtered view")
	out := fs.String("out", "proyectos.pdf", "output file")
	_ = fs.Parse(args)

	q := url.Values{}
	if *board != "" {
		q.Set("board", *board)
	}
	if *query != "" {
		q.Set("q", *query)
	}
	u := baseURL + "/api/reports/projects.pdf"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	if err := download(ctx, client, u, *out); err != nil {
		log.Fatalf("report failed: %v", err)
	}
	fmt.Printf("saved %s\n", *out)
}

func handleDuplicates(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("duplicates", flag.ExitOnError)
	out := fs.String("out", "proyectos-duplicados.pdf", "output file")
	_ = fs.Parse(args)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/reports/duplicates.pdf", nil)
	if err != nil {
		log.Fatalf("duplicates failed: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("duplicates failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("duplicates failed: %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	// A JSON body means the informational "nothing duplicated" outcome.
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
			fmt.Println(msg.Message)
			return
		}
	}

	if err := os.WriteFile(*out, body, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("saved %s\n", *out)
}

func handleRefresh(ctx context.Context, client *http.Client, baseURL string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/cards/refresh", nil)
	if err != nil {
		log.Fatalf("refresh failed: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("refresh failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("refresh failed: %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	fmt.Println("collection refreshed")
}

func handleWatch(baseURL string) {
	wsURL := strings.Replace(baseURL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("connect %s: %v", wsURL, err)
	}
	defer conn.Close()

	log.Printf("watching %s, Ctrl-C to stop", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Fatalf("connection closed: %v", err)
		}
		fmt.Println(strings.TrimSpace(string(msg)))
	}
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.Unmarshal(body, out)
}

func download(ctx context.Context, client *http.Client, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, resp.Body)
	return err
}

func printUsage() {
	fmt.Println(`obrahub CLI

usage: obrahub [-api URL] <command>

commands:
  verify                         check the Trello credentials
  boards                         list accessible boards
  cards [-q query]               list or search the card collection
  report [-board B] [-q Q] [-out F]   download the project list PDF
  duplicates [-out F]            download the duplicate-codes PDF
  refresh                        re-fetch the card collection
  watch                          stream card-change events`)
}
