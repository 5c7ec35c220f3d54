package utils

import (
	"os"
	"strings"
)

type TrelloConfig struct {
	Key     string
	Token   string
	BaseURL string
	// The portfolio only works against a known set of boards,
	// matched by name (case-insensitive) or by id.
	AllowedBoardNames []string
	AllowedBoardIDs   []string
	ProjectBoardID    string
}

type RelevanceConfig struct {
	APIKey string
	Model  string
}

type ServerConfig struct {
	Addr string
}

func LoadTrelloConfig() TrelloConfig {
	cfg := TrelloConfig{
		Key:     os.Getenv("TRELLO_API_KEY"),
		Token:   os.Getenv("TRELLO_API_TOKEN"),
		BaseURL: os.Getenv("TRELLO_BASE_URL"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.trello.com/1"
	}

	if names := os.Getenv("TRELLO_BOARD_NAMES"); names != "" {
		cfg.AllowedBoardNames = splitCSV(names)
	} else {
		cfg.AllowedBoardNames = []string{"Proyectos DEAS", "Seguimiento de obras"}
	}
	if ids := os.Getenv("TRELLO_BOARD_IDS"); ids != "" {
		cfg.AllowedBoardIDs = splitCSV(ids)
	} else {
		cfg.AllowedBoardIDs = []string{"6182b5b73b68da8f804d5d82"}
	}

	cfg.ProjectBoardID = os.Getenv("TRELLO_PROJECT_BOARD_ID")
	if cfg.ProjectBoardID == "" {
		cfg.ProjectBoardID = "CgG4b3B0"
	}
	return cfg
}

func LoadRelevanceConfig() RelevanceConfig {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return RelevanceConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  model,
	}
}

func LoadServerConfig() ServerConfig {
	addr := os.Getenv("OBRAHUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return ServerConfig{Addr: addr}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
