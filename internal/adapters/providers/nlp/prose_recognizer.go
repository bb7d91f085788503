package nlp

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/providers"
)

var (
	// Identifiers like P001, ADM12, L7: a short alpha prefix and digits.
	identifierPattern = regexp.MustCompile(`\b[A-Za-z]{1,4}\d{1,6}\b`)

	// Date spans the statistical model tends to miss: explicit days,
	// relative day words and month-name phrases.
	datePattern = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday|` +
		`\d{4}-\d{2}-\d{2}|` +
		`(?:on\s+)?(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|` +
		`jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)` +
		`\s+\d{1,2}(?:st|nd|rd|th)?|` +
		`\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|` +
		`apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|` +
		`nov(?:ember)?|dec(?:ember)?))\b`)
)

type span struct {
	start  int
	end    int
	entity entities.ExtractedEntity
}

// ProseRecognizer implements the EntityRecognizer port with a local
// statistical NER model, augmented with pattern rules for dates and record
// identifiers the model does not label.
type ProseRecognizer struct{}

// NewProseRecognizer creates a new local entity recognizer
func NewProseRecognizer() providers.EntityRecognizer {
	return &ProseRecognizer{}
}

// Recognize extracts typed entities ordered by position in the text.
func (r *ProseRecognizer) Recognize(ctx context.Context, text string) ([]entities.ExtractedEntity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	spans := patternSpans(text)

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}
	spans = append(spans, modelSpans(text, doc.Entities())...)

	return resolve(spans), nil
}

// modelSpans positions the model's entities in the text. The model reports
// entities in document order without offsets, so each one is located with a
// cursor that advances past the previous match; repeated surface forms land
// on their own occurrence instead of all pinning to the first.
func modelSpans(text string, ents []prose.Entity) []span {
	var spans []span
	cursor := 0
	for _, ent := range ents {
		label, ok := mapLabel(ent.Label)
		if !ok {
			continue
		}
		start := strings.Index(text[cursor:], ent.Text)
		if start >= 0 {
			start += cursor
			cursor = start + len(ent.Text)
		} else if start = strings.Index(text, ent.Text); start < 0 {
			start = len(text)
		}
		spans = append(spans, span{
			start:  start,
			end:    start + len(ent.Text),
			entity: entities.ExtractedEntity{Text: ent.Text, Label: label},
		})
	}
	return spans
}

func patternSpans(text string) []span {
	var spans []span
	for _, loc := range datePattern.FindAllStringIndex(text, -1) {
		matched := strings.TrimSpace(strings.TrimPrefix(text[loc[0]:loc[1]], "on "))
		spans = append(spans, span{
			start:  loc[0],
			end:    loc[1],
			entity: entities.ExtractedEntity{Text: matched, Label: entities.EntityLabelDate},
		})
	}
	for _, loc := range identifierPattern.FindAllStringIndex(text, -1) {
		spans = append(spans, span{
			start:  loc[0],
			end:    loc[1],
			entity: entities.ExtractedEntity{Text: text[loc[0]:loc[1]], Label: entities.EntityLabelIdentifier},
		})
	}
	return spans
}

// resolve orders spans by position and drops overlaps, keeping the earlier
// (and on ties, longer) span. Pattern matches precede model matches at the
// same offset because they carry exact positions.
func resolve(spans []span) []entities.ExtractedEntity {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	out := make([]entities.ExtractedEntity, 0, len(spans))
	lastEnd := -1
	for _, s := range spans {
		if s.start < lastEnd {
			continue
		}
		out = append(out, s.entity)
		lastEnd = s.end
	}
	return out
}

func mapLabel(proseLabel string) (entities.EntityLabel, bool) {
	switch proseLabel {
	case "PERSON":
		return entities.EntityLabelPerson, true
	case "GPE":
		return entities.EntityLabelPlace, true
	default:
		return "", false
	}
}
