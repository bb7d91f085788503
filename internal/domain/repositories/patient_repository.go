package repositories

import (
	"context"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
)

// PatientRepository defines read operations on patient master records
type PatientRepository interface {
	// FindByName retrieves a single patient by case-insensitive substring
	// match on the name. Multiple patients may match a fragment; the first
	// match ordered by patient_id is returned, which keeps repeated queries
	// deterministic. Returns a NOT_FOUND error when nothing matches.
	FindByName(ctx context.Context, name string) (*entities.Patient, error)
}
