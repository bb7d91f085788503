package repositories

import (
	"context"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
)

// StaffRepository defines read operations on hospital staff
type StaffRepository interface {
	// ListActive retrieves active staff members, capped at MaxRecords
	ListActive(ctx context.Context) ([]*entities.Staff, error)
}
