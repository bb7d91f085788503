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

// StaffAdapter implements the StaffRepository interface
type StaffAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewStaffAdapter creates a new staff adapter
func NewStaffAdapter(client *postgres.Client) repositories.StaffRepository {
	return &StaffAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// ListActive retrieves active staff members, capped at MaxRecords
func (a *StaffAdapter) ListActive(ctx context.Context) ([]*entities.Staff, error) {
	query, args, err := a.db.Select(
		"staff_id", "name", "role", "department", "shift", "status",
	).From("staff").
		Where(goqu.Ex{"status": "active"}).
		Order(goqu.C("name").Asc()).
		Limit(uint(repositories.MaxRecords)).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build staff query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyStoreError("failed to list staff", err)
	}
	defer rows.Close()

	staff := make([]*entities.Staff, 0)
	for rows.Next() {
		if len(staff) == repositories.MaxRecords {
			break
		}
		member := &entities.Staff{}
		err := rows.Scan(
			&member.StaffID,
			&member.Name,
			&member.Role,
			&member.Department,
			&member.Shift,
			&member.Status,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan staff member", err)
		}
		staff = append(staff, member)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStoreError("failed to read staff", err)
	}

	return staff, nil
}
