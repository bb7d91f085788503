package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/postgres"
)

func TestClinicalAdapter(t *testing.T) {
	newAdapter := func(t *testing.T) (*ClinicalAdapter, sqlmock.Sqlmock) {
		t.Helper()
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		adapter := NewClinicalAdapter(postgres.NewClientFromDB(db)).(*ClinicalAdapter)
		return adapter, mock
	}

	t.Run("admissions for a patient id", func(t *testing.T) {
		adapter, mock := newAdapter(t)

		rows := sqlmock.NewRows([]string{
			"admission_id", "patient_id", "admit_date", "discharge_date", "ward", "reason",
		}).
			AddRow("ADM1", "P001", "2026-01-10", "2026-01-14", "B2", "pneumonia").
			AddRow("ADM2", "P001", "2026-03-02", "", "C1", "observation")

		mock.ExpectQuery(`SELECT .+ FROM "admissions" WHERE \("patient_id" = 'P001'\) ORDER BY "admission_id" ASC LIMIT 100`).
			WillReturnRows(rows)

		admissions, err := adapter.AdmissionsForPatient(context.Background(), "P001")
		require.NoError(t, err)
		require.Len(t, admissions, 2)
		assert.Equal(t, "B2", admissions[0].Ward)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("diagnoses ordered by sequence", func(t *testing.T) {
		adapter, mock := newAdapter(t)

		rows := sqlmock.NewRows([]string{
			"id", "patient_id", "admission_id", "icd_code", "description", "seq_num",
		}).
			AddRow("D1", "P001", "ADM1", "J18.9", "Pneumonia, unspecified organism", 1).
			AddRow("D2", "P001", "ADM1", "E11.9", "Type 2 diabetes mellitus", 2)

		mock.ExpectQuery(`SELECT .+ FROM "diagnoses" WHERE \("admission_id" = 'ADM1'\) ORDER BY "seq_num" ASC LIMIT 100`).
			WillReturnRows(rows)

		diagnoses, err := adapter.DiagnosesForAdmission(context.Background(), "ADM1")
		require.NoError(t, err)
		require.Len(t, diagnoses, 2)
		assert.Equal(t, "J18.9", diagnoses[0].ICDCode)
		assert.Equal(t, 2, diagnoses[1].SeqNum)
	})

	t.Run("lab catalog has no filter", func(t *testing.T) {
		adapter, mock := newAdapter(t)

		rows := sqlmock.NewRows([]string{"item_id", "label", "fluid", "category"}).
			AddRow("L1", "Complete Blood Count", "blood", "hematology").
			AddRow("L2", "Urinalysis", "urine", "chemistry")

		mock.ExpectQuery(`SELECT .+ FROM "lab_items" ORDER BY "item_id" ASC LIMIT 100`).
			WillReturnRows(rows)

		items, err := adapter.LabItems(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Urinalysis", items[1].Label)
	})

	t.Run("notes for an admission", func(t *testing.T) {
		adapter, mock := newAdapter(t)
		created := time.Date(2026, 1, 11, 8, 30, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{
			"id", "patient_id", "admission_id", "category", "text", "created_at",
		}).AddRow("N1", "P001", "ADM1", "Nursing", "Patient stable overnight.", created)

		mock.ExpectQuery(`SELECT .+ FROM "note_events" WHERE \("admission_id" = 'ADM1'\) ORDER BY "created_at" ASC LIMIT 100`).
			WillReturnRows(rows)

		notes, err := adapter.NotesForAdmission(context.Background(), "ADM1")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Nursing", notes[0].Category)
	})
}
