package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/providers"
)

// MockEntityRecognizer is a mock implementation of EntityRecognizer
type MockEntityRecognizer struct {
	mock.Mock
}

func (m *MockEntityRecognizer) Recognize(ctx context.Context, text string) ([]entities.ExtractedEntity, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ExtractedEntity), args.Error(1)
}

// MockIntentScorer is a mock implementation of IntentScorer
type MockIntentScorer struct {
	mock.Mock
}

func (m *MockIntentScorer) Score(ctx context.Context, text string, candidateLabels []string) ([]providers.LabelScore, error) {
	args := m.Called(ctx, text, candidateLabels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]providers.LabelScore), args.Error(1)
}

// MockAnswerGenerator is a mock implementation of AnswerGenerator
type MockAnswerGenerator struct {
	mock.Mock
}

func (m *MockAnswerGenerator) Generate(ctx context.Context, query string, facts any) (string, error) {
	args := m.Called(ctx, query, facts)
	return args.String(0), args.Error(1)
}

// MockCacheProvider is a mock implementation of CacheProvider
type MockCacheProvider struct {
	mock.Mock
}

func (m *MockCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheProvider) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	args := m.Called(ctx, key, value, expirationSeconds)
	return args.Error(0)
}

func (m *MockCacheProvider) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockPatientRepository is a mock implementation of PatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindByName(ctx context.Context, name string) (*entities.Patient, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) ListOnDate(ctx context.Context, date string) ([]*entities.Appointment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Appointment), args.Error(1)
}

// MockStaffRepository is a mock implementation of StaffRepository
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) ListActive(ctx context.Context) ([]*entities.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Staff), args.Error(1)
}

// MockClinicalRepository is a mock implementation of ClinicalRepository
type MockClinicalRepository struct {
	mock.Mock
}

func (m *MockClinicalRepository) AdmissionsForPatient(ctx context.Context, patientID string) ([]*entities.Admission, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Admission), args.Error(1)
}

func (m *MockClinicalRepository) PrescriptionsForPatient(ctx context.Context, patientID string) ([]*entities.Prescription, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Prescription), args.Error(1)
}

func (m *MockClinicalRepository) DiagnosesForPatient(ctx context.Context, patientID string) ([]*entities.Diagnosis, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Diagnosis), args.Error(1)
}

func (m *MockClinicalRepository) LabApplicationsForPatient(ctx context.Context, patientID string) ([]*entities.LabApplication, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LabApplication), args.Error(1)
}

func (m *MockClinicalRepository) NotesForPatient(ctx context.Context, patientID string) ([]*entities.NoteEvent, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.NoteEvent), args.Error(1)
}

func (m *MockClinicalRepository) DiagnosesForAdmission(ctx context.Context, admissionID string) ([]*entities.Diagnosis, error) {
	args := m.Called(ctx, admissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Diagnosis), args.Error(1)
}

func (m *MockClinicalRepository) PrescriptionsForAdmission(ctx context.Context, admissionID string) ([]*entities.Prescription, error) {
	args := m.Called(ctx, admissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Prescription), args.Error(1)
}

func (m *MockClinicalRepository) NotesForAdmission(ctx context.Context, admissionID string) ([]*entities.NoteEvent, error) {
	args := m.Called(ctx, admissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.NoteEvent), args.Error(1)
}

func (m *MockClinicalRepository) LabItems(ctx context.Context) ([]*entities.LabItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LabItem), args.Error(1)
}
