package repositories

import (
	"context"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
)

// ClinicalRepository defines read operations on per-patient and
// per-admission clinical collections. Every list is capped at MaxRecords;
// an empty result is success, not an error.
type ClinicalRepository interface {
	AdmissionsForPatient(ctx context.Context, patientID string) ([]*entities.Admission, error)
	PrescriptionsForPatient(ctx context.Context, patientID string) ([]*entities.Prescription, error)
	DiagnosesForPatient(ctx context.Context, patientID string) ([]*entities.Diagnosis, error)
	LabApplicationsForPatient(ctx context.Context, patientID string) ([]*entities.LabApplication, error)
	NotesForPatient(ctx context.Context, patientID string) ([]*entities.NoteEvent, error)

	DiagnosesForAdmission(ctx context.Context, admissionID string) ([]*entities.Diagnosis, error)
	PrescriptionsForAdmission(ctx context.Context, admissionID string) ([]*entities.Prescription, error)
	NotesForAdmission(ctx context.Context, admissionID string) ([]*entities.NoteEvent, error)

	// LabItems lists the lab test catalog, capped at MaxRecords
	LabItems(ctx context.Context) ([]*entities.LabItem, error)
}
