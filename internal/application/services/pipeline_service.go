package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/intents"
	"github.com/clinicore/doctor-chatbot/internal/domain/providers"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/postgres"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/observability"
)

// PipelineService orchestrates one utterance end to end:
// extract → classify → dispatch → retrieve → remember → generate.
// Process always returns displayable text, whatever fails inside.
type PipelineService struct {
	extraction     *ExtractionService
	classification *ClassificationService
	dispatch       *DispatchService
	retrieval      *RetrievalService
	memory         *ConversationMemory
	generator      providers.AnswerGenerator
}

// NewPipelineService wires the pipeline stages together
func NewPipelineService(
	extraction *ExtractionService,
	classification *ClassificationService,
	dispatch *DispatchService,
	retrieval *RetrievalService,
	memory *ConversationMemory,
	generator providers.AnswerGenerator,
) *PipelineService {
	return &PipelineService{
		extraction:     extraction,
		classification: classification,
		dispatch:       dispatch,
		retrieval:      retrieval,
		memory:         memory,
		generator:      generator,
	}
}

// Process runs the pipeline for one utterance in one session. The session id
// doubles as the execution-context id, so every retrieval in the session
// reuses one store client.
func (s *PipelineService) Process(ctx context.Context, sessionID, message string) (reply string) {
	intent := intents.Fallback

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("session_id", sessionID).
				Str("intent", string(intent)).
				Msg("pipeline panicked")
			reply = MessageInternalError
		}
	}()

	ctx = postgres.WithExecutionContext(ctx, sessionID)

	utterance, entity := s.extraction.Extract(ctx, message)

	result := s.classification.Classify(ctx, utterance, entity)
	intent = result.Intent

	// Trace ids from the request span ride along on every pipeline log line.
	logger := observability.LoggerFromContext(ctx).With().
		Str("session_id", sessionID).
		Str("intent", string(result.Intent)).
		Float64("confidence", result.Confidence).
		Str("language", utterance.Language).
		Logger()

	plan, terminal := s.dispatch.Plan(result, entity)
	if terminal != nil {
		logger.Info().Str("outcome", string(terminal.Kind)).Msg("pipeline finished without retrieval")
		return terminal.Message
	}

	outcome := s.retrieval.Execute(ctx, plan)
	logger.Info().Str("outcome", string(outcome.Kind)).Msg("retrieval finished")

	switch outcome.Kind {
	case entities.OutcomeSuccess, entities.OutcomeNotFound:
		// NOT_FOUND still counts as a completed dispatch: memory is updated
		// and the payload goes to the generator.
		entityText := ""
		if entity != nil {
			entityText = entity.Text
		}
		s.memory.Update(sessionID, result.Intent, entityText)

		answer, err := s.generator.Generate(ctx, message, outcome.Facts)
		if err != nil {
			logger.Warn().Err(err).Msg("answer generator failed")
			return MessageGeneratorUnavailable
		}
		return answer

	default:
		return outcome.Message
	}
}
