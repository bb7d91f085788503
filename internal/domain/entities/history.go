package entities

// PatientHistory is the composite full-history lookup result: the patient
// record plus its related collections, each capped at the collection limit.
type PatientHistory struct {
	Patient         *Patient          `json:"patient"`
	Admissions      []*Admission      `json:"admissions"`
	Prescriptions   []*Prescription   `json:"prescriptions"`
	Diagnoses       []*Diagnosis      `json:"diagnoses"`
	LabApplications []*LabApplication `json:"lab_applications"`
	Notes           []*NoteEvent      `json:"notes"`
}
