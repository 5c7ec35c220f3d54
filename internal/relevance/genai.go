package relevance

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"obrahub/pkg/utils"
)

// Score is the model's judgement of how relevant a testimonial is to
// what a visitor has been doing on the site.
type Score struct {
	RelevanceScore int    `json:"relevanceScore"` // 0-100
	Reason         string `json:"reason"`
}

// Scorer rates one testimonial against a visitor activity description.
type Scorer interface {
	Score(ctx context.Context, visitorActivity, testimonial string) (Score, error)
}

// GenAIScorer scores testimonials with Google's Gemini API.
type GenAIScorer struct {
	client *genai.Client
	model  string
}

func NewGenAIScorer(ctx context.Context, cfg utils.RelevanceConfig) (*GenAIScorer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("relevance: GenAI API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("relevance: create GenAI client: %w", err)
	}
	return &GenAIScorer{client: client, model: model}, nil
}

const scorePrompt = `You are an expert in understanding user behavior and the impact of testimonials.

You are given a description of a visitor's activity on a website and a customer testimonial.

Your task is to determine the relevance of the testimonial to the visitor's activity and assign a relevance score between 0 and 100.

Provide a reason for the assigned score.

Visitor Activity: %s

Testimonial: %s

Consider factors like the visitor's interests, the problems they are trying to solve, and the solutions offered in the testimonial.
`

func (s *GenAIScorer) Score(ctx context.Context, visitorActivity, testimonial string) (Score, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"relevanceScore": {Type: genai.TypeInteger},
				"reason":         {Type: genai.TypeString},
			},
			Required: []string{"relevanceScore", "reason"},
		},
	}

	prompt := fmt.Sprintf(scorePrompt, visitorActivity, testimonial)
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		return Score{}, fmt.Errorf("relevance: generate: %w", err)
	}

	var score Score
	if err := json.Unmarshal([]byte(resp.Text()), &score); err != nil {
		return Score{}, fmt.Errorf("relevance: decode: %w", err)
	}
	return score, nil
}
