package entities

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled patient appointment. Date is stored as
// a plain YYYY-MM-DD string so day-level lookups are exact matches.
type Appointment struct {
	ID          string            `json:"id" db:"id"`
	PatientID   string            `json:"patient_id" db:"patient_id"`
	PatientName string            `json:"patient_name" db:"patient_name"`
	StaffID     string            `json:"staff_id" db:"staff_id"`
	Date        string            `json:"date" db:"date"`
	Time        string            `json:"time" db:"time"`
	Department  string            `json:"department" db:"department"`
	Reason      string            `json:"reason" db:"reason"`
	Status      AppointmentStatus `json:"status" db:"status"`
}
