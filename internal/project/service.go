package project

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"obrahub/internal/trello"
	"obrahub/pkg/models"
)

// Gateway is the slice of the remote client the service needs.
type Gateway interface {
	CardsOnBoard(ctx context.Context, boardID string) ([]models.Card, error)
	Lists(ctx context.Context, boardID string) ([]models.List, error)
	CreateCard(ctx context.Context, req trello.CreateCardRequest) (models.Card, error)
}

// Service creates project cards on the project board: it derives the
// next free code for the chosen cuenca, finds the cuenca's list and
// files the card there with the standard description template.
type Service struct {
	gw      Gateway
	boardID string
}

func NewService(gw Gateway, projectBoardID string) *Service {
	return &Service{gw: gw, boardID: projectBoardID}
}

type CreateRequest struct {
	Name     string `json:"name" binding:"required,min=1"`
	CuencaID string `json:"cuenca" binding:"required"`
}

// ErrUnknownCuenca is returned for a cuenca id outside the catalog.
type ErrUnknownCuenca struct{ ID string }

func (e *ErrUnknownCuenca) Error() string {
	return fmt.Sprintf("project: unknown cuenca %q", e.ID)
}

// NextCode scans the project board for codes with the cuenca's prefix
// and returns the next one, zero-padded to three digits.
func (s *Service) NextCode(ctx context.Context, prefix string) (string, error) {
	cards, err := s.gw.CardsOnBoard(ctx, s.boardID)
	if err != nil {
		return "", err
	}

	// Prefix lengths vary in the catalog (RSA vs CM), so the project
	// code pattern cannot be reused here.
	pattern, err := regexp.Compile(`\(` + regexp.QuoteMeta(prefix) + `([0-9]{3})\)$`)
	if err != nil {
		return "", fmt.Errorf("project: bad cuenca prefix %q: %w", prefix, err)
	}

	max := 0
	for _, card := range cards {
		m := pattern.FindStringSubmatch(strings.TrimSpace(card.Name))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1), nil
}

// Create files a new project card and returns it.
func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Card, error) {
	cuenca, ok := CuencaByID(req.CuencaID)
	if !ok {
		return models.Card{}, &ErrUnknownCuenca{ID: req.CuencaID}
	}

	code, err := s.NextCode(ctx, cuenca.Code)
	if err != nil {
		return models.Card{}, err
	}

	lists, err := s.gw.Lists(ctx, s.boardID)
	if err != nil {
		return models.Card{}, err
	}
	var target *models.List
	for i := range lists {
		if strings.EqualFold(lists[i].Name, cuenca.ListName) {
			target = &lists[i]
			break
		}
	}
	if target == nil {
		return models.Card{}, fmt.Errorf("project: list %q not found on project board", cuenca.ListName)
	}

	return s.gw.CreateCard(ctx, trello.CreateCardRequest{
		Name:       fmt.Sprintf("%s (%s)", strings.TrimSpace(req.Name), code),
		ListID:     target.ID,
		Desc:       DescriptionTemplate,
		CoverColor: "red",
	})
}
