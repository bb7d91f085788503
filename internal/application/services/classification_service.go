package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/intents"
	"github.com/clinicore/doctor-chatbot/internal/domain/providers"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/observability"
)

// minConfidenceThreshold is the floor under the configurable confidence bar.
// Configuration may raise the bar, never lower it.
const minConfidenceThreshold = 0.10

// classificationCacheTTLSeconds is how long scored utterances stay cached
const classificationCacheTTLSeconds = 24 * 60 * 60

// ClassificationService scores utterances against the intent registry
// through the zero-shot oracle. Results are cached by normalized text; the
// service is fully functional with a nil cache.
type ClassificationService struct {
	scorer    providers.IntentScorer
	registry  *intents.Registry
	cache     providers.CacheProvider
	threshold float64
	metrics   *observability.Metrics
}

// NewClassificationService creates a new classification service. cache and
// metrics may be nil.
func NewClassificationService(
	scorer providers.IntentScorer,
	registry *intents.Registry,
	cache providers.CacheProvider,
	threshold float64,
	metrics *observability.Metrics,
) *ClassificationService {
	if threshold < minConfidenceThreshold {
		threshold = minConfidenceThreshold
	}
	return &ClassificationService{
		scorer:    scorer,
		registry:  registry,
		cache:     cache,
		threshold: threshold,
		metrics:   metrics,
	}
}

// Classify returns the best-scoring intent for the utterance, or the
// fallback state. The primary entity, when present, is appended as a subject
// hint so the oracle scores "her latest labs (Subject: Jane Roe)" rather
// than the bare pronoun form. Any oracle failure degrades to fallback.
func (s *ClassificationService) Classify(ctx context.Context, utterance entities.Utterance, entity *entities.ExtractedEntity) intents.ClassificationResult {
	text := utterance.Text
	if entity != nil {
		text = fmt.Sprintf("%s (Subject: %s)", text, entity.Text)
	}

	cacheKey := "intent:" + strings.ToLower(text)
	if cached, ok := s.cachedResult(ctx, cacheKey); ok {
		return cached
	}

	ranked, err := s.scorer.Score(ctx, text, s.registry.Labels())
	if err != nil || len(ranked) == 0 {
		log.Warn().Err(err).Str("utterance", utterance.Text).Msg("intent oracle failed, falling back")
		s.recordFallback(ctx, "oracle_error")
		return intents.ClassificationResult{Intent: intents.Fallback, Confidence: 0.0}
	}

	top := ranked[0]
	intent, ok := s.registry.IntentFor(top.Label)
	if !ok {
		log.Warn().Str("label", top.Label).Msg("oracle returned a label outside the registry")
		s.recordFallback(ctx, "unknown_label")
		return intents.ClassificationResult{Intent: intents.Fallback, Confidence: 0.0}
	}

	result := intents.ClassificationResult{Intent: intent, Confidence: top.Score}
	if top.Score < s.threshold {
		s.recordFallback(ctx, "below_threshold")
		result.Intent = intents.Fallback
	}

	s.storeResult(ctx, cacheKey, result)
	return result
}

func (s *ClassificationService) cachedResult(ctx context.Context, key string) (intents.ClassificationResult, bool) {
	if s.cache == nil {
		return intents.ClassificationResult{}, false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return intents.ClassificationResult{}, false
	}
	var result intents.ClassificationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return intents.ClassificationResult{}, false
	}
	return result, true
}

func (s *ClassificationService) storeResult(ctx context.Context, key string, result intents.ClassificationResult) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, classificationCacheTTLSeconds); err != nil {
		log.Debug().Err(err).Msg("failed to cache classification result")
	}
}

func (s *ClassificationService) recordFallback(ctx context.Context, reason string) {
	if s.metrics == nil || s.metrics.FallbackCount == nil {
		return
	}
	observability.RecordFallback(ctx, s.metrics, reason)
}
