package entities

// EntityLabel classifies a salient span extracted from an utterance
type EntityLabel string

const (
	EntityLabelPerson     EntityLabel = "PERSON"
	EntityLabelOrg        EntityLabel = "ORG"
	EntityLabelPlace      EntityLabel = "PLACE"
	EntityLabelDate       EntityLabel = "DATE"
	EntityLabelIdentifier EntityLabel = "IDENTIFIER"
)

// ExtractedEntity is a typed span pulled out of raw utterance text.
// Ephemeral: constructed and discarded within a single pipeline run.
type ExtractedEntity struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
}

// Utterance is the immutable pipeline input. Language is a best-effort
// detection tag used for diagnostics only and never gates routing.
type Utterance struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}
