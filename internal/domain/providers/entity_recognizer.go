package providers

import (
	"context"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
)

// EntityRecognizer is the outbound port to the named-entity recognizer.
// Implementations return entities ordered by position in the text.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]entities.ExtractedEntity, error)
}
