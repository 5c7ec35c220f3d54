package relevance

import (
	"context"
	"log"
	"sort"

	"obrahub/pkg/models"
)

type Ranked struct {
	Testimonial models.Testimonial `json:"testimonial"`
	Score       int                `json:"score"`
	Reason      string             `json:"reason"`
}

// Rank scores every testimonial against the visitor activity and
// orders the list by descending relevance. A failed score falls back
// to zero with a placeholder reason, so scoring problems degrade to
// the neutral catalog order instead of erroring out.
func Rank(ctx context.Context, scorer Scorer, visitorActivity string, testimonials []models.Testimonial) []Ranked {
	ranked := make([]Ranked, len(testimonials))
	for i, t := range testimonials {
		ranked[i] = Ranked{Testimonial: t}

		if scorer == nil {
			continue
		}
		score, err := scorer.Score(ctx, visitorActivity, t.Quote)
		if err != nil {
			log.Printf("relevance scoring failed for %s: %v", t.ID, err)
			ranked[i].Reason = "error processing relevance"
			continue
		}
		ranked[i].Score = score.RelevanceScore
		ranked[i].Reason = score.Reason
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
