package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/repositories"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/postgres"
	apperrors "github.com/clinicore/doctor-chatbot/pkg/errors"
)

// ClinicalAdapter implements the ClinicalRepository interface
type ClinicalAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewClinicalAdapter creates a new clinical records adapter
func NewClinicalAdapter(client *postgres.Client) repositories.ClinicalRepository {
	return &ClinicalAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func (a *ClinicalAdapter) query(ctx context.Context, table string, cols []any, where goqu.Ex, order string) (*sql.Rows, error) {
	query, args, err := a.db.Select(cols...).
		From(table).
		Where(where).
		Order(goqu.C(order).Asc()).
		Limit(uint(repositories.MaxRecords)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build "+table+" query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyStoreError("failed to query "+table, err)
	}
	return rows, nil
}

// AdmissionsForPatient lists admissions for a patient id
func (a *ClinicalAdapter) AdmissionsForPatient(ctx context.Context, patientID string) ([]*entities.Admission, error) {
	cols := []any{"admission_id", "patient_id", "admit_date", "discharge_date", "ward", "reason"}
	rows, err := a.query(ctx, "admissions", cols, goqu.Ex{"patient_id": patientID}, "admission_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entities.Admission, 0)
	for rows.Next() {
		if len(out) == repositories.MaxRecords {
			break
		}
		adm := &entities.Admission{}
		if err := rows.Scan(&adm.AdmissionID, &adm.PatientID, &adm.AdmitDate, &adm.DischargeDate, &adm.Ward, &adm.Reason); err != nil {
			return nil, apperrors.NewInternalError("failed to scan admission", err)
		}
		out = append(out, adm)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("failed to read admissions", err)
	}
	return out, nil
}

func (a *ClinicalAdapter) prescriptions(ctx context.Context, where goqu.Ex) ([]*entities.Prescription, error) {
	cols := []any{"id", "patient_id", "admission_id", "drug", "dose", "route", "start_date", "end_date"}
	rows, err := a.query(ctx, "prescriptions", cols, where, "id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entities.Prescription, 0)
	for rows.Next() {
		if len(out) == repositories.MaxRecords {
			break
		}
		p := &entities.Prescription{}
		if err := rows.Scan(&p.ID, &p.PatientID, &p.AdmissionID, &p.Drug, &p.Dose, &p.Route, &p.StartDate, &p.EndDate); err != nil {
			return nil, apperrors.NewInternalError("failed to scan prescription", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("failed to read prescriptions", err)
	}
	return out, nil
}

// PrescriptionsForPatient lists prescriptions for a patient id
func (a *ClinicalAdapter) PrescriptionsForPatient(ctx context.Context, patientID string) ([]*entities.Prescription, error) {
	return a.prescriptions(ctx, goqu.Ex{"patient_id": patientID})
}

// PrescriptionsForAdmission lists prescriptions for an admission id
func (a *ClinicalAdapter) PrescriptionsForAdmission(ctx context.Context, admissionID string) ([]*entities.Prescription, error) {
	return a.prescriptions(ctx, goqu.Ex{"admission_id": admissionID})
}

func (a *ClinicalAdapter) diagnoses(ctx context.Context, where goqu.Ex) ([]*entities.Diagnosis, error) {
	cols := []any{"id", "patient_id", "admission_id", "icd_code", "description", "seq_num"}
	rows, err := a.query(ctx, "diagnoses", cols, where, "seq_num")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entities.Diagnosis, 0)
	for rows.Next() {
		if len(out) == repositories.MaxRecords {
			break
		}
		d := &entities.Diagnosis{}
		if err := rows.Scan(&d.ID, &d.PatientID, &d.AdmissionID, &d.ICDCode, &d.Description, &d.SeqNum); err != nil {
			return nil, apperrors.NewInternalError("failed to scan diagnosis", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("failed to read diagnoses", err)
	}
	return out, nil
}

// DiagnosesForPatient lists diagnoses for a patient id
func (a *ClinicalAdapter) DiagnosesForPatient(ctx context.Context, patientID string) ([]*entities.Diagnosis, error) {
	return a.diagnoses(ctx, goqu.Ex{"patient_id": patientID})
}

// DiagnosesForAdmission lists diagnoses for an admission id
func (a *ClinicalAdapter) DiagnosesForAdmission(ctx context.Context, admissionID string) ([]*entities.Diagnosis, error) {
	return a.diagnoses(ctx, goqu.Ex{"admission_id": admissionID})
}

// LabApplicationsForPatient lists lab test requests for a patient id
func (a *ClinicalAdapter) LabApplicationsForPatient(ctx context.Context, patientID string) ([]*entities.LabApplication, error) {
	cols := []any{"id", "patient_id", "admission_id", "item_id", "status", "requested_at"}
	rows, err := a.query(ctx, "lab_applications", cols, goqu.Ex{"patient_id": patientID}, "requested_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entities.LabApplication, 0)
	for rows.Next() {
		if len(out) == repositories.MaxRecords {
			break
		}
		app := &entities.LabApplication{}
		if err := rows.Scan(&app.ID, &app.PatientID, &app.AdmissionID, &app.ItemID, &app.Status, &app.RequestedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan lab application", err)
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("failed to read lab applications", err)
	}
	return out, nil
}

func (a *ClinicalAdapter) notes(ctx context.Context, where goqu.Ex) ([]*entities.NoteEvent, error) {
	cols := []any{"id", "patient_id", "admission_id", "category", "text", "created_at"}
	rows, err := a.query(ctx, "note_events", cols, where, "created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entities.NoteEvent, 0)
	for rows.Next() {
		if len(out) == repositories.MaxRecords {
			break
		}
		n := &entities.NoteEvent{}
		if err := rows.Scan(&n.ID, &n.PatientID, &n.AdmissionID, &n.Category, &n.Text, &n.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan note", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("failed to read notes", err)
	}
	return out, nil
}

// NotesForPatient lists clinical notes for a patient id
func (a *ClinicalAdapter) NotesForPatient(ctx context.Context, patientID string) ([]*entities.NoteEvent, error) {
	return a.notes(ctx, goqu.Ex{"patient_id": patientID})
}

// NotesForAdmission lists clinical notes for an admission id
func (a *ClinicalAdapter) NotesForAdmission(ctx context.Context, admissionID string) ([]*entities.NoteEvent, error) {
	return a.notes(ctx, goqu.Ex{"admission_id": admissionID})
}

// LabItems lists the lab test catalog
func (a *ClinicalAdapter) LabItems(ctx context.Context) ([]*entities.LabItem, error) {
	query, args, err := a.db.Select("item_id", "label", "fluid", "category").
		From("lab_items").
		Order(goqu.C("item_id").Asc()).
		Limit(uint(repositories.MaxRecords)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build lab items query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyStoreError("failed to list lab items", err)
	}
	defer rows.Close()

	out := make([]*entities.LabItem, 0)
	for rows.Next() {
		if len(out) == repositories.MaxRecords {
			break
		}
		item := &entities.LabItem{}
		if err := rows.Scan(&item.ItemID, &item.Label, &item.Fluid, &item.Category); err != nil {
			return nil, apperrors.NewInternalError("failed to scan lab item", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("failed to read lab items", err)
	}
	return out, nil
}
