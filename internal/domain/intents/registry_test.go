package intents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/doctor-chatbot/internal/domain/intents"
)

func TestNewRegistry_DefaultSchemaIsValid(t *testing.T) {
	r, err := intents.NewRegistry(intents.DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, len(intents.DefaultSchema()), r.Len())
	assert.Len(t, r.Labels(), r.Len())
}

func TestNewRegistry_Bidirectional(t *testing.T) {
	r := intents.MustNewRegistry(intents.DefaultSchema())

	label, ok := r.Description(intents.PatientInfo)
	require.True(t, ok)

	intent, ok := r.IntentFor(label)
	require.True(t, ok)
	assert.Equal(t, intents.PatientInfo, intent)
}

func TestNewRegistry_RejectsDuplicateDescriptions(t *testing.T) {
	schema := map[intents.Intent]string{
		"a": "Same description.",
		"b": "Same description.",
	}

	_, err := intents.NewRegistry(schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate description")
}

func TestNewRegistry_RejectsEmptySchema(t *testing.T) {
	_, err := intents.NewRegistry(nil)
	require.Error(t, err)
}

func TestNewRegistry_RejectsEmptyDescription(t *testing.T) {
	_, err := intents.NewRegistry(map[intents.Intent]string{"a": ""})
	require.Error(t, err)
}

func TestRegistry_LabelsAreStable(t *testing.T) {
	r := intents.MustNewRegistry(intents.DefaultSchema())
	assert.Equal(t, r.Labels(), r.Labels())
}

func TestDefaultRules_EveryRuleHasSchemaEntry(t *testing.T) {
	schema := intents.DefaultSchema()
	for intent, rule := range intents.DefaultRules() {
		assert.Contains(t, schema, intent)
		assert.Equal(t, intent, rule.Intent)
		assert.NotEmpty(t, rule.Capability)
	}
}

func TestArgKindPrompts(t *testing.T) {
	assert.Equal(t, "Please specify a patient name.", intents.ArgPatientName.Prompt())
	assert.Equal(t, "Please provide a patient id.", intents.ArgPatientID.Prompt())
	assert.Equal(t, "Please provide an admission id.", intents.ArgAdmissionID.Prompt())
	assert.Contains(t, intents.ArgDate.Prompt(), "date")
}
