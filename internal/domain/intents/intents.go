package intents

// Intent is the recognized category of a user request, drawn from a fixed
// enumerated set.
type Intent string

// Fallback is the state in which no intent meets the confidence bar.
const Fallback Intent = "fallback"

// Routed intents: these have dispatch rules and reach the record store.
const (
	AppointmentsToday         Intent = "appointments_today"
	AppointmentsOnDate        Intent = "appointments_on_date"
	PatientInfo               Intent = "patient_info"
	StaffInfo                 Intent = "staff_info"
	GetPatientDOB             Intent = "get_patient_dob"
	GetPatientContact         Intent = "get_patient_contact"
	AdmissionsForPatient      Intent = "admissions_for_patient"
	LabApplicationsForPatient Intent = "lab_applications_for_patient"
	LabItemsList              Intent = "lab_items_list"
	DiagnosisForAdmission     Intent = "diagnosis_for_admission"
	PrescriptionsForAdmission Intent = "prescriptions_for_admission"
	NotesForAdmission         Intent = "notes_for_admission"
)

// ClassificationResult is the product of scoring an utterance against the
// candidate label set. Produced fresh per utterance, never mutated.
type ClassificationResult struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// IsFallback reports whether no intent cleared the confidence bar
func (r ClassificationResult) IsFallback() bool {
	return r.Intent == Fallback
}

// DefaultSchema maps every intent key to the natural-language description
// used as its zero-shot candidate label. Descriptions must be unique: the
// top-ranked label is mapped back to its key through this table.
func DefaultSchema() map[Intent]string {
	return map[Intent]string{
		AppointmentsToday:         "Get today's appointments.",
		AppointmentsOnDate:        "Get appointments for a specific date.",
		PatientInfo:               "Fetch patient record details.",
		StaffInfo:                 "List hospital staff information.",
		GetPatientDOB:             "Fetch patient's date of birth.",
		GetPatientContact:         "Fetch patient's phone or contact info.",
		AdmissionsForPatient:      "Get admission history for a patient id.",
		LabApplicationsForPatient: "Get lab test applications for a patient id.",
		LabItemsList:              "List the catalog of orderable lab tests.",
		DiagnosisForAdmission:     "Get diagnoses recorded for an admission.",
		PrescriptionsForAdmission: "Get prescriptions ordered during an admission.",
		NotesForAdmission:         "Get clinical notes written during an admission.",

		"greeting":                 "User says hello or initiates conversation.",
		"goodbye":                  "User ends conversation or says goodbye.",
		"ask_doctor":               "Ask a question to the doctor.",
		"department_info":          "Query hospital departments or specialties.",
		"lab_results":              "Retrieve patient lab results.",
		"prescriptions":            "Retrieve patient prescription list.",
		"admission_info":           "Get admission or discharge info for a patient.",
		"update_patient_contact":   "Update contact info for a patient.",
		"cancel_appointment":       "Cancel a scheduled appointment.",
		"book_appointment":         "Book a new appointment.",
		"reschedule_appointment":   "Reschedule an existing appointment.",
		"get_patient_gender":       "Fetch patient's gender.",
		"get_all_patients":         "List all patients in system.",
		"get_recent_admissions":    "Get recent hospital admissions.",
		"discharge_summary":        "Fetch discharge summary for a patient.",
		"doctor_schedule":          "Get a doctor's schedule.",
		"nurse_on_duty":            "Identify nurse on duty.",
		"room_availability":        "Check available rooms.",
		"bed_occupancy":            "Get bed occupancy report.",
		"lab_test_schedule":        "List patient's upcoming lab tests.",
		"radiology_results":        "Get radiology results.",
		"emergency_contacts":       "Show patient's emergency contacts.",
		"pharmacy_inventory":       "Check pharmacy stock or availability.",
		"prescription_renewal":     "Renew a prescription.",
		"patient_allergies":        "Fetch known patient allergies.",
		"vital_signs_history":      "View historical vitals.",
		"billing_summary":          "Get billing summary or invoice.",
		"insurance_details":        "Fetch insurance coverage info.",
		"next_of_kin":              "Show next of kin info.",
		"doctor_notes":             "Display doctor's notes.",
		"referral_status":          "Check referral status.",
		"follow_up_appointments":   "Get follow-up appointment info.",
		"pending_lab_tests":        "List pending lab tests.",
		"completed_lab_tests":      "List completed lab tests.",
		"active_medications":       "Show active medications.",
		"medication_side_effects":  "List medication side effects.",
		"dietary_recommendations":  "Show dietary advice for patient.",
		"discharge_instructions":   "Give discharge instructions.",
		"icu_patients":             "List patients in ICU.",
		"ward_overview":            "Show ward-level occupancy or details.",
		"staff_shift_schedule":     "Fetch shift schedules.",
		"visitor_policy":           "Show hospital visitor policy.",
		"hospital_map":             "Display hospital map.",
		"room_cleaning_schedule":   "Get cleaning schedule for rooms.",
		"infection_reports":        "Report or view infections.",
		"covid_protocols":          "Display COVID-19 protocols.",
		"vaccine_records":          "Show vaccine records.",
		"doctor_on_call":           "Identify doctor on call.",
		"critical_alerts":          "Display critical alerts.",
		"system_status":            "Check backend system health.",
		"clinical_guidelines":      "Show clinical protocols.",
		"temperature_trends":       "Track patient temperature over time.",
		"oxygen_saturation_levels": "View oxygen saturation data.",
	}
}
