package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/intents"
	"github.com/clinicore/doctor-chatbot/internal/domain/providers"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/postgres"
	apperrors "github.com/clinicore/doctor-chatbot/pkg/errors"
)

type pipelineFixture struct {
	pipeline     *PipelineService
	memory       *ConversationMemory
	recognizer   *MockEntityRecognizer
	scorer       *MockIntentScorer
	generator    *MockAnswerGenerator
	patients     *MockPatientRepository
	appointments *MockAppointmentRepository
	staff        *MockStaffRepository
	clinical     *MockClinicalRepository
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()

	f := &pipelineFixture{
		memory:       NewConversationMemory(),
		recognizer:   new(MockEntityRecognizer),
		scorer:       new(MockIntentScorer),
		generator:    new(MockAnswerGenerator),
		patients:     new(MockPatientRepository),
		appointments: new(MockAppointmentRepository),
		staff:        new(MockStaffRepository),
		clinical:     new(MockClinicalRepository),
	}

	registry := postgres.NewRegistryWithOpener(func() (*postgres.Client, error) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		return postgres.NewClientFromDB(db), nil
	})
	t.Cleanup(func() { registry.CloseAll() })

	dispatch := NewDispatchService()
	dispatch.now = func() time.Time { return time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC) }

	retrieval := NewRetrievalService(registry, func(client *postgres.Client) *RepositorySet {
		return &RepositorySet{
			Patients:     f.patients,
			Appointments: f.appointments,
			Staff:        f.staff,
			Clinical:     f.clinical,
		}
	}, dispatch.Today, nil)

	f.pipeline = NewPipelineService(
		NewExtractionService(f.recognizer),
		NewClassificationService(f.scorer, intents.MustNewRegistry(intents.DefaultSchema()), nil, 0.10, nil),
		dispatch,
		retrieval,
		f.memory,
		f.generator,
	)
	return f
}

func (f *pipelineFixture) scoreAs(label string, score float64) {
	f.scorer.On("Score", mock.Anything, mock.Anything, mock.Anything).
		Return([]providers.LabelScore{{Label: label, Score: score}}, nil)
}

func TestPipelineService_Process(t *testing.T) {
	t.Run("successful run returns generated text and remembers the turn", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{}, nil)
		f.scoreAs("Get today's appointments.", 0.92)
		f.appointments.On("ListOnDate", mock.Anything, "2026-06-01").
			Return([]*entities.Appointment{{ID: "A1", PatientName: "John Doe"}}, nil)
		f.generator.On("Generate", mock.Anything, "what's on today?", mock.Anything).
			Return("There is one appointment today: John Doe.", nil)

		reply := f.pipeline.Process(context.Background(), "s1", "what's on today?")

		assert.Equal(t, "There is one appointment today: John Doe.", reply)
		remembered, ok := f.memory.Context("s1")
		require.True(t, ok)
		assert.Equal(t, intents.AppointmentsToday, remembered.LastIntent)
	})

	t.Run("low confidence returns the unrecognized message untouched", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{}, nil)
		f.scoreAs("Get today's appointments.", 0.04)

		reply := f.pipeline.Process(context.Background(), "s1", "mumble mumble")

		assert.Equal(t, MessageUnrecognized, reply)
		_, ok := f.memory.Context("s1")
		assert.False(t, ok)
		f.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing arguments return the validation prompt", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{}, nil)
		f.scoreAs("Fetch patient record details.", 0.85)

		reply := f.pipeline.Process(context.Background(), "s1", "pull up the patient record")

		assert.Equal(t, "Please specify a patient name.", reply)
		_, ok := f.memory.Context("s1")
		assert.False(t, ok)
	})

	t.Run("unknown patients still reach the generator", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{
			{Text: "Nobody Realperson", Label: entities.EntityLabelPerson},
		}, nil)
		f.scoreAs("Fetch patient's date of birth.", 0.81)
		f.patients.On("FindByName", mock.Anything, "Nobody Realperson").
			Return(nil, apperrors.NewNotFoundError("patient not found"))
		f.generator.On("Generate", mock.Anything, mock.Anything, map[string]string{"error": MessagePatientNotFound}).
			Return("I could not find that patient in the system.", nil)

		reply := f.pipeline.Process(context.Background(), "s1", "dob for Nobody Realperson")

		assert.Equal(t, "I could not find that patient in the system.", reply)
		remembered, ok := f.memory.Context("s1")
		require.True(t, ok)
		assert.Equal(t, "Nobody Realperson", remembered.LastEntity)
	})

	t.Run("store failure returns the unavailable message without memory update", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{}, nil)
		f.scoreAs("List the catalog of orderable lab tests.", 0.88)
		f.clinical.On("LabItems", mock.Anything).
			Return(nil, apperrors.NewInternalError("bad scan", nil))

		reply := f.pipeline.Process(context.Background(), "s1", "what lab tests can we order?")

		assert.Equal(t, MessageStoreUnavailable, reply)
		_, ok := f.memory.Context("s1")
		assert.False(t, ok)
	})

	t.Run("generator failure degrades to the apology message", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{}, nil)
		f.scoreAs("List hospital staff information.", 0.9)
		f.staff.On("ListActive", mock.Anything).Return([]*entities.Staff{{StaffID: "S01"}}, nil)
		f.generator.On("Generate", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("completion endpoint 500"))

		reply := f.pipeline.Process(context.Background(), "s1", "who is working right now")

		assert.Equal(t, MessageGeneratorUnavailable, reply)
	})

	t.Run("panics become the generic internal message", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{}, nil)
		f.scoreAs("List hospital staff information.", 0.9)
		f.staff.On("ListActive", mock.Anything).Return([]*entities.Staff{{StaffID: "S01"}}, nil)
		f.generator.On("Generate", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { panic("boom") }).
			Return("", nil)

		reply := f.pipeline.Process(context.Background(), "s1", "who is working right now")

		assert.Equal(t, MessageInternalError, reply)
	})

	t.Run("oracle outage degrades to the unrecognized message", func(t *testing.T) {
		f := newPipelineFixture(t)
		f.recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{}, nil)
		f.scorer.On("Score", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("oracle unreachable"))

		reply := f.pipeline.Process(context.Background(), "s1", "appointments today")

		assert.Equal(t, MessageUnrecognized, reply)
	})
}
