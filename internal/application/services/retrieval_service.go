package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/intents"
	"github.com/clinicore/doctor-chatbot/internal/domain/repositories"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/postgres"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/observability"
	apperrors "github.com/clinicore/doctor-chatbot/pkg/errors"
	"github.com/clinicore/doctor-chatbot/pkg/retry"
)

// RepositorySet bundles the repositories built over one store client
type RepositorySet struct {
	Patients     repositories.PatientRepository
	Appointments repositories.AppointmentRepository
	Staff        repositories.StaffRepository
	Clinical     repositories.ClinicalRepository
}

// RepositoryFactory builds a repository set over a store client
type RepositoryFactory func(client *postgres.Client) *RepositorySet

// RetrievalService executes dispatch plans against the record store. Each
// execution context gets its own store client from the registry, created on
// first use and reused for the context's lifetime. Transient store faults
// are retried with the fixed store policy; every other error is terminal.
type RetrievalService struct {
	registry *postgres.Registry
	repos    RepositoryFactory
	today    func() string
	metrics  *observability.Metrics
}

// NewRetrievalService creates a new retrieval service. metrics may be nil.
func NewRetrievalService(registry *postgres.Registry, repos RepositoryFactory, today func() string, metrics *observability.Metrics) *RetrievalService {
	return &RetrievalService{
		registry: registry,
		repos:    repos,
		today:    today,
		metrics:  metrics,
	}
}

// Execute runs the dispatch plan and tags the result. Retrieved facts are
// shaped for the answer generator; a missing primary entity is NOT_FOUND,
// and its payload still reaches the generator.
func (s *RetrievalService) Execute(ctx context.Context, dispatch *Dispatch) entities.RetrievalOutcome {
	client, err := s.registry.ForContext(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to open store client for execution context")
		return entities.RetrievalOutcome{
			Kind:    entities.OutcomeStoreError,
			Message: MessageStoreUnavailable,
		}
	}

	set := s.repos(client)

	var facts any
	err = retry.DoWithLog(
		ctx,
		retry.StoreConfig(apperrors.IsTransient),
		"record store",
		func() error {
			var runErr error
			facts, runErr = s.run(ctx, set, dispatch)
			return runErr
		},
		func(attempt int, err error, nextDelay time.Duration) {
			if s.metrics != nil && s.metrics.StoreRetryCount != nil {
				observability.RecordStoreRetry(ctx, s.metrics, string(dispatch.Rule.Capability))
			}
			log.Warn().
				Int("attempt", attempt).
				Err(err).
				Dur("next_delay", nextDelay).
				Str("capability", string(dispatch.Rule.Capability)).
				Msg("store operation failed, retrying")
		},
	)

	if err != nil {
		if apperrors.IsNotFound(err) {
			return entities.RetrievalOutcome{
				Kind:    entities.OutcomeNotFound,
				Message: MessagePatientNotFound,
				Facts:   map[string]string{"error": MessagePatientNotFound},
			}
		}
		log.Error().
			Err(err).
			Str("capability", string(dispatch.Rule.Capability)).
			Msg("store operation failed after retries")
		return entities.RetrievalOutcome{
			Kind:    entities.OutcomeStoreError,
			Message: MessageStoreUnavailable,
		}
	}

	return entities.RetrievalOutcome{Kind: entities.OutcomeSuccess, Facts: facts}
}

func (s *RetrievalService) run(ctx context.Context, set *RepositorySet, dispatch *Dispatch) (any, error) {
	arg := dispatch.Argument

	switch dispatch.Rule.Capability {
	case intents.CapabilityAppointmentsToday:
		return set.Appointments.ListOnDate(ctx, s.today())

	case intents.CapabilityAppointmentsOnDate:
		return set.Appointments.ListOnDate(ctx, arg)

	case intents.CapabilityActiveStaff:
		return set.Staff.ListActive(ctx)

	case intents.CapabilityPatientHistory:
		return s.patientHistory(ctx, set, arg)

	case intents.CapabilityPatientDOB:
		patient, err := set.Patients.FindByName(ctx, arg)
		if err != nil {
			return nil, err
		}
		return map[string]string{"name": patient.Name, "dob": patient.DOB}, nil

	case intents.CapabilityPatientContact:
		patient, err := set.Patients.FindByName(ctx, arg)
		if err != nil {
			return nil, err
		}
		return map[string]string{"name": patient.Name, "contact": patient.Contact, "address": patient.Address}, nil

	case intents.CapabilityAdmissionsForPatient:
		return set.Clinical.AdmissionsForPatient(ctx, arg)

	case intents.CapabilityLabApplicationsForPatient:
		return set.Clinical.LabApplicationsForPatient(ctx, arg)

	case intents.CapabilityLabItems:
		return set.Clinical.LabItems(ctx)

	case intents.CapabilityDiagnosesForAdmission:
		return set.Clinical.DiagnosesForAdmission(ctx, arg)

	case intents.CapabilityPrescriptionsForAdmission:
		return set.Clinical.PrescriptionsForAdmission(ctx, arg)

	case intents.CapabilityNotesForAdmission:
		return set.Clinical.NotesForAdmission(ctx, arg)
	}

	return nil, apperrors.NewInternalError("no executor for capability "+string(dispatch.Rule.Capability), nil)
}

// patientHistory is the composite lookup: the patient record plus every
// related collection, each capped at the collection limit.
func (s *RetrievalService) patientHistory(ctx context.Context, set *RepositorySet, name string) (any, error) {
	patient, err := set.Patients.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	history := &entities.PatientHistory{Patient: patient}

	if history.Admissions, err = set.Clinical.AdmissionsForPatient(ctx, patient.PatientID); err != nil {
		return nil, err
	}
	if history.Prescriptions, err = set.Clinical.PrescriptionsForPatient(ctx, patient.PatientID); err != nil {
		return nil, err
	}
	if history.Diagnoses, err = set.Clinical.DiagnosesForPatient(ctx, patient.PatientID); err != nil {
		return nil, err
	}
	if history.LabApplications, err = set.Clinical.LabApplicationsForPatient(ctx, patient.PatientID); err != nil {
		return nil, err
	}
	if history.Notes, err = set.Clinical.NotesForPatient(ctx, patient.PatientID); err != nil {
		return nil, err
	}

	return history, nil
}
