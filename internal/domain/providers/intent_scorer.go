package providers

import (
	"context"
)

// LabelScore is one candidate label with its zero-shot score
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// IntentScorer is the outbound port to the classification oracle: it scores
// text against a candidate label set and returns labels ranked by score,
// best first.
type IntentScorer interface {
	Score(ctx context.Context, text string, candidateLabels []string) ([]LabelScore, error)
}
