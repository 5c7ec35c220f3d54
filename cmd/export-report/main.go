package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"obrahub/internal/board"
	"obrahub/internal/report"
	"obrahub/internal/search"
	"obrahub/internal/trello"
	"obrahub/pkg/models"
	"obrahub/pkg/utils"
)

// export-report talks to the remote API directly and writes a report
// PDF to disk, no server needed.
func main() {
	boardName := flag.String("board", "", "narrow to one board name")
	query := flag.String("q", "", "narrow to a search-filtered view")
	duplicates := flag.Bool("duplicates", false, "generate the duplicate-codes report instead")
	out := flag.String("out", "", "output file (defaults per report kind)")
	timeout := flag.Duration("timeout", 60*time.Second, "overall fetch timeout")
	flag.Parse()

	client, err := trello.NewClient(utils.LoadTrelloConfig())
	if err != nil {
		log.Fatalf("trello client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cards, err := board.NewAggregator(client).ListAllCards(ctx)
	if err != nil {
		log.Fatalf("fetch cards: %v", err)
	}
	log.Printf("aggregated %d cards", len(cards))

	gen := report.NewGenerator()

	if *duplicates {
		path := *out
		if path == "" {
			path = "proyectos-duplicados.pdf"
		}
		pdf, err := gen.Duplicates(cards)
		if errors.Is(err, report.ErrNoDuplicates) {
			fmt.Println("no se encontraron códigos duplicados")
			return
		}
		if err != nil {
			log.Fatalf("duplicates report: %v", err)
		}
		writeFile(path, pdf)
		return
	}

	if *query != "" {
		results := search.Match(*query, cards)
		cards = make([]models.Card, len(results))
		for i, r := range results {
			cards[i] = r.Card
		}
	}

	path := *out
	if path == "" {
		path = "proyectos.pdf"
	}
	pdf, err := gen.ProjectList(report.Scope{
		BoardName: *boardName,
		Query:     *query,
		Cards:     cards,
	})
	if err != nil {
		log.Fatalf("project report: %v", err)
	}
	writeFile(path, pdf)
}

func writeFile(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	fmt.Printf("saved %s\n", path)
}
