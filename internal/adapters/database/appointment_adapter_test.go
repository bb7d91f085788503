package database

import (
	"context"
	"database/sql/driver"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/doctor-chatbot/internal/domain/repositories"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/postgres"
	apperrors "github.com/clinicore/doctor-chatbot/pkg/errors"
)

func TestAppointmentAdapter_ListOnDate(t *testing.T) {
	columns := []string{
		"id", "patient_id", "patient_name", "staff_id", "date", "time",
		"department", "reason", "status",
	}

	newAdapter := func(t *testing.T) (*AppointmentAdapter, sqlmock.Sqlmock) {
		t.Helper()
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		adapter := NewAppointmentAdapter(postgres.NewClientFromDB(db)).(*AppointmentAdapter)
		return adapter, mock
	}

	t.Run("lists appointments for a day ordered by time", func(t *testing.T) {
		adapter, mock := newAdapter(t)

		rows := sqlmock.NewRows(columns).
			AddRow("A1", "P001", "John Doe", "S01", "2026-06-21", "09:00", "cardiology", "follow-up", "scheduled").
			AddRow("A2", "P002", "Jane Roe", "S02", "2026-06-21", "10:30", "oncology", "review", "scheduled")

		mock.ExpectQuery(`SELECT .+ FROM "appointments" WHERE \("date" = '2026-06-21'\) ORDER BY "time" ASC LIMIT 100`).
			WillReturnRows(rows)

		appointments, err := adapter.ListOnDate(context.Background(), "2026-06-21")
		require.NoError(t, err)
		require.Len(t, appointments, 2)
		assert.Equal(t, "John Doe", appointments[0].PatientName)
		assert.Equal(t, "10:30", appointments[1].Time)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty day is a success with an empty slice", func(t *testing.T) {
		adapter, mock := newAdapter(t)

		mock.ExpectQuery(`SELECT .+ FROM "appointments"`).
			WillReturnRows(sqlmock.NewRows(columns))

		appointments, err := adapter.ListOnDate(context.Background(), "2026-06-22")
		require.NoError(t, err)
		assert.NotNil(t, appointments)
		assert.Empty(t, appointments)
	})

	t.Run("results never exceed the record cap", func(t *testing.T) {
		adapter, mock := newAdapter(t)

		rows := sqlmock.NewRows(columns)
		for i := 0; i < repositories.MaxRecords+50; i++ {
			rows.AddRow(
				driver.Value(fmt.Sprintf("A%03d", i)), "P001", "John Doe", "S01",
				"2026-06-21", fmt.Sprintf("%02d:%02d", i/60, i%60), "cardiology",
				"follow-up", "scheduled",
			)
		}
		mock.ExpectQuery(`SELECT .+ FROM "appointments"`).WillReturnRows(rows)

		appointments, err := adapter.ListOnDate(context.Background(), "2026-06-21")
		require.NoError(t, err)
		assert.Len(t, appointments, repositories.MaxRecords)
	})

	t.Run("query failures surface as store errors", func(t *testing.T) {
		adapter, mock := newAdapter(t)

		mock.ExpectQuery(`SELECT .+ FROM "appointments"`).
			WillReturnError(context.DeadlineExceeded)

		_, err := adapter.ListOnDate(context.Background(), "2026-06-21")
		require.Error(t, err)
		assert.True(t, apperrors.IsTransient(err))
	})
}
