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

// PatientAdapter implements the PatientRepository interface
type PatientAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPatientAdapter creates a new patient adapter
func NewPatientAdapter(client *postgres.Client) repositories.PatientRepository {
	return &PatientAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// FindByName retrieves the first patient whose name contains the fragment,
// case-insensitively. Ordering by patient_id keeps the first-match policy
// deterministic when several patients share the fragment.
func (a *PatientAdapter) FindByName(ctx context.Context, name string) (*entities.Patient, error) {
	query, args, err := a.db.Select(
		"patient_id", "name", "dob", "gender", "contact", "address",
		"created_at", "updated_at",
	).From("patients").
		Where(goqu.C("name").ILike("%" + name + "%")).
		Order(goqu.C("patient_id").Asc()).
		Limit(1).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build patient query", err)
	}

	patient := &entities.Patient{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&patient.PatientID,
		&patient.Name,
		&patient.DOB,
		&patient.Gender,
		&patient.Contact,
		&patient.Address,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("patient not found")
	}
	if err != nil {
		return nil, classifyStoreError("failed to find patient", err)
	}

	return patient, nil
}
