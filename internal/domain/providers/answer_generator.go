package providers

import (
	"context"
)

// AnswerGenerator is the outbound port to the free-text answer generator.
// The pipeline is responsible only for producing well-formed facts, not for
// prompt wording.
type AnswerGenerator interface {
	Generate(ctx context.Context, query string, facts any) (string, error)
}
