package entities

import (
	"time"
)

// Patient represents a patient master record
type Patient struct {
	PatientID string    `json:"patient_id" db:"patient_id"`
	Name      string    `json:"name" db:"name"`
	DOB       string    `json:"dob" db:"dob"`
	Gender    string    `json:"gender" db:"gender"`
	Contact   string    `json:"contact" db:"contact"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
