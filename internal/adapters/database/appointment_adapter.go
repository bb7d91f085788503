package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/domain/repositories"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/postgres"
	apperrors "github.com/clinicore/doctor-chatbot/pkg/errors"
)

// AppointmentAdapter implements the AppointmentRepository interface
type AppointmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(client *postgres.Client) repositories.AppointmentRepository {
	return &AppointmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListOnDate retrieves appointments for a YYYY-MM-DD date, capped at
// MaxRecords.
func (a *AppointmentAdapter) ListOnDate(ctx context.Context, date string) ([]*entities.Appointment, error) {
	query, args, err := a.db.Select(
		"id", "patient_id", "patient_name", "staff_id", "date", "time",
		"department", "reason", "status",
	).From("appointments").
		Where(goqu.Ex{"date": date}).
		Order(goqu.C("time").Asc()).
		Limit(uint(repositories.MaxRecords)).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build appointment query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyStoreError("failed to list appointments", err)
	}
	defer rows.Close()

	appointments := make([]*entities.Appointment, 0)
	for rows.Next() {
		if len(appointments) == repositories.MaxRecords {
			break
		}
		appointment := &entities.Appointment{}
		err := rows.Scan(
			&appointment.ID,
			&appointment.PatientID,
			&appointment.PatientName,
			&appointment.StaffID,
			&appointment.Date,
			&appointment.Time,
			&appointment.Department,
			&appointment.Reason,
			&appointment.Status,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan appointment", err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("failed to read appointments", err)
	}

	return appointments, nil
}
