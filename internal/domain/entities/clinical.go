package entities

import (
	"time"
)

// Admission represents a hospital admission episode
type Admission struct {
	AdmissionID   string `json:"admission_id" db:"admission_id"`
	PatientID     string `json:"patient_id" db:"patient_id"`
	AdmitDate     string `json:"admit_date" db:"admit_date"`
	DischargeDate string `json:"discharge_date" db:"discharge_date"`
	Ward          string `json:"ward" db:"ward"`
	Reason        string `json:"reason" db:"reason"`
}

// Prescription represents a drug order tied to an admission
type Prescription struct {
	ID          string `json:"id" db:"id"`
	PatientID   string `json:"patient_id" db:"patient_id"`
	AdmissionID string `json:"admission_id" db:"admission_id"`
	Drug        string `json:"drug" db:"drug"`
	Dose        string `json:"dose" db:"dose"`
	Route       string `json:"route" db:"route"`
	StartDate   string `json:"start_date" db:"start_date"`
	EndDate     string `json:"end_date" db:"end_date"`
}

// Diagnosis represents a coded diagnosis for an admission
type Diagnosis struct {
	ID          string `json:"id" db:"id"`
	PatientID   string `json:"patient_id" db:"patient_id"`
	AdmissionID string `json:"admission_id" db:"admission_id"`
	ICDCode     string `json:"icd_code" db:"icd_code"`
	Description string `json:"description" db:"description"`
	SeqNum      int    `json:"seq_num" db:"seq_num"`
}

// LabApplication represents a lab test request for a patient
type LabApplication struct {
	ID          string    `json:"id" db:"id"`
	PatientID   string    `json:"patient_id" db:"patient_id"`
	AdmissionID string    `json:"admission_id" db:"admission_id"`
	ItemID      string    `json:"item_id" db:"item_id"`
	Status      string    `json:"status" db:"status"`
	RequestedAt time.Time `json:"requested_at" db:"requested_at"`
}

// LabItem represents a catalog entry of orderable lab tests
type LabItem struct {
	ItemID   string `json:"item_id" db:"item_id"`
	Label    string `json:"label" db:"label"`
	Fluid    string `json:"fluid" db:"fluid"`
	Category string `json:"category" db:"category"`
}

// NoteEvent represents a free-text clinical note
type NoteEvent struct {
	ID          string    `json:"id" db:"id"`
	PatientID   string    `json:"patient_id" db:"patient_id"`
	AdmissionID string    `json:"admission_id" db:"admission_id"`
	Category    string    `json:"category" db:"category"`
	Text        string    `json:"text" db:"text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
