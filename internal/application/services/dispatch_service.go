package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/intents"
)

// Dispatch is a validated, executable retrieval plan
type Dispatch struct {
	Rule     intents.DispatchRule
	Argument string
}

// DispatchService resolves a classification result against the static rule
// table and validates the required argument. It never touches the store.
type DispatchService struct {
	rules  map[intents.Intent]intents.DispatchRule
	parser *when.Parser
	now    func() time.Time
}

// NewDispatchService creates a dispatch service over the default rule table
func NewDispatchService() *DispatchService {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)

	return &DispatchService{
		rules:  intents.DefaultRules(),
		parser: parser,
		now:    time.Now,
	}
}

// Plan validates the classification against the rule table. It returns
// either an executable dispatch or a terminal outcome; exactly one of the
// two is non-nil.
func (s *DispatchService) Plan(result intents.ClassificationResult, entity *entities.ExtractedEntity) (*Dispatch, *entities.RetrievalOutcome) {
	if result.IsFallback() {
		return nil, &entities.RetrievalOutcome{
			Kind:    entities.OutcomeUnrecognized,
			Message: MessageUnrecognized,
		}
	}

	rule, ok := s.rules[result.Intent]
	if !ok {
		// Recognized intent with no retrieval rule: handled exactly like
		// fallback, no store call.
		return nil, &entities.RetrievalOutcome{
			Kind:    entities.OutcomeUnrecognized,
			Message: MessageUnrecognized,
		}
	}

	if rule.RequiredArg == intents.ArgNone {
		return &Dispatch{Rule: rule}, nil
	}

	if entity == nil || strings.TrimSpace(entity.Text) == "" {
		return nil, &entities.RetrievalOutcome{
			Kind:    entities.OutcomeValidationError,
			Message: rule.RequiredArg.Prompt(),
		}
	}

	argument := strings.TrimSpace(entity.Text)
	if rule.RequiredArg == intents.ArgDate {
		date, ok := s.normalizeDate(argument)
		if !ok {
			return nil, &entities.RetrievalOutcome{
				Kind:    entities.OutcomeValidationError,
				Message: MessageUnparsableDate,
			}
		}
		argument = date
	}

	return &Dispatch{Rule: rule, Argument: argument}, nil
}

// Today returns the current date in store format. Used by the zero-argument
// appointments capability.
func (s *DispatchService) Today() string {
	return s.now().Format("2006-01-02")
}

// normalizeDate turns a date span into the YYYY-MM-DD store format. The
// literals today/tomorrow are resolved against the local clock; everything
// else goes through the natural-language parser.
func (s *DispatchService) normalizeDate(text string) (string, bool) {
	switch strings.ToLower(text) {
	case "today":
		return s.now().Format("2006-01-02"), true
	case "tomorrow":
		return s.now().AddDate(0, 0, 1).Format("2006-01-02"), true
	}

	if isoDatePattern.MatchString(text) {
		t, err := time.Parse("2006-01-02", text)
		if err != nil {
			return "", false
		}
		return t.Format("2006-01-02"), true
	}

	result, err := s.parser.Parse(text, s.now())
	if err != nil || result == nil {
		return "", false
	}
	if !calendarMatches(result.Text, result.Time) {
		return "", false
	}
	return result.Time.Format("2006-01-02"), true
}

var (
	isoDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dayTokenPattern = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\b`)

	monthTokens = map[string]time.Month{
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "may": time.May, "jun": time.June,
		"jul": time.July, "aug": time.August, "sep": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	}
)

// calendarMatches reports whether the resolved time still carries the month
// and day named in the matched text. The parser hands matched components to
// time.Date, which rolls invalid dates forward ("June 31st" resolves to
// July 1st), so a mismatch means the named date does not exist. Relative
// phrases without a month name ("tomorrow", "in 3 days") pass through.
func calendarMatches(matched string, resolved time.Time) bool {
	lower := strings.ToLower(matched)

	month, named := namedMonth(lower)
	if !named {
		return true
	}
	if month != resolved.Month() {
		return false
	}
	if m := dayTokenPattern.FindStringSubmatch(lower); m != nil {
		if day, err := strconv.Atoi(m[1]); err == nil && day != resolved.Day() {
			return false
		}
	}
	return true
}

func namedMonth(lower string) (time.Month, bool) {
	for token, month := range monthTokens {
		if strings.Contains(lower, token) {
			return month, true
		}
	}
	return 0, false
}
