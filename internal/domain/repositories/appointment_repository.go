package repositories

import (
	"context"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
)

// AppointmentRepository defines read operations on appointments
type AppointmentRepository interface {
	// ListOnDate retrieves appointments for a YYYY-MM-DD date, capped at
	// MaxRecords. An empty day yields an empty list, not an error.
	ListOnDate(ctx context.Context, date string) ([]*entities.Appointment, error)
}
