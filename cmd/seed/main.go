package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/joho/godotenv"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
	"github.com/clinicore/doctor-chatbot/internal/infrastructure/clients/postgres"
	"github.com/clinicore/doctor-chatbot/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS patients (
	patient_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	dob TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT '',
	contact TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS appointments (
	id TEXT PRIMARY KEY,
	patient_id TEXT NOT NULL,
	patient_name TEXT NOT NULL DEFAULT '',
	staff_id TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL,
	time TEXT NOT NULL DEFAULT '',
	department TEXT NOT NULL DEFAULT '',
	reason TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'scheduled'
);
CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments (date);

CREATE TABLE IF NOT EXISTS staff (
	staff_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT '',
	department TEXT NOT NULL DEFAULT '',
	shift TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'active'
);

CREATE TABLE IF NOT EXISTS admissions (
	admission_id TEXT PRIMARY KEY,
	patient_id TEXT NOT NULL,
	admit_date TEXT NOT NULL DEFAULT '',
	discharge_date TEXT NOT NULL DEFAULT '',
	ward TEXT NOT NULL DEFAULT '',
	reason TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_admissions_patient ON admissions (patient_id);

CREATE TABLE IF NOT EXISTS prescriptions (
	id TEXT PRIMARY KEY,
	patient_id TEXT NOT NULL,
	admission_id TEXT NOT NULL DEFAULT '',
	drug TEXT NOT NULL,
	dose TEXT NOT NULL DEFAULT '',
	route TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	end_date TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_prescriptions_patient ON prescriptions (patient_id);
CREATE INDEX IF NOT EXISTS idx_prescriptions_admission ON prescriptions (admission_id);

CREATE TABLE IF NOT EXISTS diagnoses (
	id TEXT PRIMARY KEY,
	patient_id TEXT NOT NULL,
	admission_id TEXT NOT NULL DEFAULT '',
	icd_code TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	seq_num INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_diagnoses_admission ON diagnoses (admission_id);

CREATE TABLE IF NOT EXISTS lab_applications (
	id TEXT PRIMARY KEY,
	patient_id TEXT NOT NULL,
	admission_id TEXT NOT NULL DEFAULT '',
	item_id TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'requested',
	requested_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_lab_applications_patient ON lab_applications (patient_id);

CREATE TABLE IF NOT EXISTS lab_items (
	item_id TEXT PRIMARY KEY,
	label TEXT NOT NULL,
	fluid TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS note_events (
	id TEXT PRIMARY KEY,
	patient_id TEXT NOT NULL,
	admission_id TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	text TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_note_events_admission ON note_events (admission_id);
`

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				patients,
				appointments,
				staff,
				admissions,
				prescriptions,
				diagnoses,
				lab_applications,
				lab_items,
				note_events
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	db := goqu.New("postgres", pgClient.DB())
	now := time.Now()
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	patients := []entities.Patient{
		{PatientID: "P001", Name: "John Doe", DOB: "1984-02-11", Gender: "male", Contact: "+2348012340001", Address: "12 Adeola Odeku St, Lagos", CreatedAt: now, UpdatedAt: now},
		{PatientID: "P002", Name: "Jane Roe", DOB: "1990-07-23", Gender: "female", Contact: "+2348012340002", Address: "4 Marina Rd, Lagos", CreatedAt: now, UpdatedAt: now},
		{PatientID: "P003", Name: "Amina Bello", DOB: "1975-12-02", Gender: "female", Contact: "+2348012340003", Address: "22 Garki Close, Abuja", CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range patients {
		insert(ctx, db, "patients", p)
	}

	staff := []entities.Staff{
		{StaffID: "S01", Name: "Dr. Adeyemi Okafor", Role: "doctor", Department: "cardiology", Shift: "day", Status: "active"},
		{StaffID: "S02", Name: "Dr. Grace Eze", Role: "doctor", Department: "oncology", Shift: "night", Status: "active"},
		{StaffID: "S03", Name: "Nurse Tunde Alabi", Role: "nurse", Department: "general", Shift: "day", Status: "active"},
		{StaffID: "S04", Name: "Dr. Femi Ojo", Role: "doctor", Department: "surgery", Shift: "day", Status: "inactive"},
	}
	for _, s := range staff {
		insert(ctx, db, "staff", s)
	}

	appointments := []entities.Appointment{
		{ID: "A001", PatientID: "P001", PatientName: "John Doe", StaffID: "S01", Date: today, Time: "09:00", Department: "cardiology", Reason: "follow-up", Status: entities.AppointmentStatusScheduled},
		{ID: "A002", PatientID: "P002", PatientName: "Jane Roe", StaffID: "S02", Date: today, Time: "11:30", Department: "oncology", Reason: "review", Status: entities.AppointmentStatusScheduled},
		{ID: "A003", PatientID: "P003", PatientName: "Amina Bello", StaffID: "S01", Date: tomorrow, Time: "10:00", Department: "cardiology", Reason: "new referral", Status: entities.AppointmentStatusScheduled},
	}
	for _, a := range appointments {
		insert(ctx, db, "appointments", a)
	}

	admissions := []entities.Admission{
		{AdmissionID: "ADM1", PatientID: "P001", AdmitDate: "2026-01-10", DischargeDate: "2026-01-14", Ward: "B2", Reason: "pneumonia"},
		{AdmissionID: "ADM2", PatientID: "P001", AdmitDate: "2026-03-02", DischargeDate: "", Ward: "C1", Reason: "observation"},
		{AdmissionID: "ADM3", PatientID: "P002", AdmitDate: "2025-11-21", DischargeDate: "2025-11-25", Ward: "A1", Reason: "appendectomy"},
	}
	for _, a := range admissions {
		insert(ctx, db, "admissions", a)
	}

	prescriptions := []entities.Prescription{
		{ID: "RX1", PatientID: "P001", AdmissionID: "ADM1", Drug: "Amoxicillin", Dose: "500mg", Route: "oral", StartDate: "2026-01-10", EndDate: "2026-01-17"},
		{ID: "RX2", PatientID: "P001", AdmissionID: "ADM1", Drug: "Paracetamol", Dose: "1g", Route: "oral", StartDate: "2026-01-10", EndDate: "2026-01-14"},
		{ID: "RX3", PatientID: "P002", AdmissionID: "ADM3", Drug: "Ceftriaxone", Dose: "1g", Route: "IV", StartDate: "2025-11-21", EndDate: "2025-11-24"},
	}
	for _, p := range prescriptions {
		insert(ctx, db, "prescriptions", p)
	}

	diagnoses := []entities.Diagnosis{
		{ID: "D1", PatientID: "P001", AdmissionID: "ADM1", ICDCode: "J18.9", Description: "Pneumonia, unspecified organism", SeqNum: 1},
		{ID: "D2", PatientID: "P001", AdmissionID: "ADM1", ICDCode: "E11.9", Description: "Type 2 diabetes mellitus without complications", SeqNum: 2},
		{ID: "D3", PatientID: "P002", AdmissionID: "ADM3", ICDCode: "K35.80", Description: "Unspecified acute appendicitis", SeqNum: 1},
	}
	for _, d := range diagnoses {
		insert(ctx, db, "diagnoses", d)
	}

	labItems := []entities.LabItem{
		{ItemID: "L1", Label: "Complete Blood Count", Fluid: "blood", Category: "hematology"},
		{ItemID: "L2", Label: "Urinalysis", Fluid: "urine", Category: "chemistry"},
		{ItemID: "L3", Label: "Blood Culture", Fluid: "blood", Category: "microbiology"},
		{ItemID: "L4", Label: "Liver Function Panel", Fluid: "blood", Category: "chemistry"},
	}
	for _, l := range labItems {
		insert(ctx, db, "lab_items", l)
	}

	labApplications := []entities.LabApplication{
		{ID: "LA1", PatientID: "P001", AdmissionID: "ADM1", ItemID: "L1", Status: "completed", RequestedAt: now.Add(-48 * time.Hour)},
		{ID: "LA2", PatientID: "P001", AdmissionID: "ADM2", ItemID: "L3", Status: "requested", RequestedAt: now.Add(-2 * time.Hour)},
		{ID: "LA3", PatientID: "P002", AdmissionID: "ADM3", ItemID: "L2", Status: "completed", RequestedAt: now.Add(-240 * time.Hour)},
	}
	for _, l := range labApplications {
		insert(ctx, db, "lab_applications", l)
	}

	notes := []entities.NoteEvent{
		{ID: "N1", PatientID: "P001", AdmissionID: "ADM1", Category: "Nursing", Text: "Patient stable overnight, afebrile.", CreatedAt: now.Add(-47 * time.Hour)},
		{ID: "N2", PatientID: "P001", AdmissionID: "ADM1", Category: "Discharge summary", Text: "Discharged on oral antibiotics with follow-up in two weeks.", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "N3", PatientID: "P002", AdmissionID: "ADM3", Category: "Physician", Text: "Post-operative recovery uneventful.", CreatedAt: now.Add(-200 * time.Hour)},
	}
	for _, n := range notes {
		insert(ctx, db, "note_events", n)
	}

	log.Println("Seeding complete")
}

func insert(ctx context.Context, db *goqu.Database, table string, row any) {
	query, args, err := db.Insert(table).Rows(row).OnConflict(goqu.DoNothing()).ToSQL()
	if err != nil {
		log.Printf("Failed to build insert for %s: %v", table, err)
		return
	}
	if _, err := db.Db.ExecContext(ctx, query, args...); err != nil {
		log.Printf("Failed to insert into %s: %v", table, err)
	}
}
