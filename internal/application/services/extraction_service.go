package services

import (
	"context"

	"github.com/abadojack/whatlanggo"
	"github.com/rs/zerolog/log"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/providers"
)

// labelPriority orders entity labels for primary-entity selection. Within a
// label, the earliest occurrence in the text wins.
var labelPriority = []entities.EntityLabel{
	entities.EntityLabelPerson,
	entities.EntityLabelOrg,
	entities.EntityLabelPlace,
	entities.EntityLabelDate,
	entities.EntityLabelIdentifier,
}

// ExtractionService turns raw text into an Utterance and its primary entity
type ExtractionService struct {
	recognizer providers.EntityRecognizer
}

// NewExtractionService creates a new extraction service
func NewExtractionService(recognizer providers.EntityRecognizer) *ExtractionService {
	return &ExtractionService{recognizer: recognizer}
}

// Extract tags the utterance language and selects the primary entity by
// label priority. A recognizer failure degrades to no entity: absence of an
// entity is a valid state, not an error.
func (s *ExtractionService) Extract(ctx context.Context, text string) (entities.Utterance, *entities.ExtractedEntity) {
	utterance := entities.Utterance{
		Text:     text,
		Language: whatlanggo.LangToString(whatlanggo.Detect(text).Lang),
	}

	found, err := s.recognizer.Recognize(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("entity recognizer failed, continuing without entities")
		return utterance, nil
	}

	return utterance, selectPrimary(found)
}

func selectPrimary(found []entities.ExtractedEntity) *entities.ExtractedEntity {
	for _, label := range labelPriority {
		for _, entity := range found {
			if entity.Label == label {
				e := entity
				return &e
			}
		}
	}
	return nil
}
