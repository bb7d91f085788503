package intents

// ArgKind identifies the single argument a dispatch rule may require
type ArgKind string

const (
	ArgNone        ArgKind = "NONE"
	ArgPatientName ArgKind = "PATIENT_NAME"
	ArgPatientID   ArgKind = "PATIENT_ID"
	ArgAdmissionID ArgKind = "ADMISSION_ID"
	ArgDate        ArgKind = "DATE"
)

// Prompt returns the user-facing validation message for a missing argument
func (k ArgKind) Prompt() string {
	switch k {
	case ArgPatientName:
		return "Please specify a patient name."
	case ArgPatientID:
		return "Please provide a patient id."
	case ArgAdmissionID:
		return "Please provide an admission id."
	case ArgDate:
		return "Please mention a specific date (e.g., 'on June 21st')."
	}
	return "Please provide the missing detail."
}

// Capability is a named read operation against the record store,
// parameterized by zero or one argument.
type Capability string

const (
	CapabilityAppointmentsToday         Capability = "appointments_today"
	CapabilityAppointmentsOnDate        Capability = "appointments_on_date"
	CapabilityActiveStaff               Capability = "active_staff"
	CapabilityPatientHistory            Capability = "patient_history"
	CapabilityPatientDOB                Capability = "patient_dob"
	CapabilityPatientContact            Capability = "patient_contact"
	CapabilityAdmissionsForPatient      Capability = "admissions_for_patient"
	CapabilityLabApplicationsForPatient Capability = "lab_applications_for_patient"
	CapabilityLabItems                  Capability = "lab_items"
	CapabilityDiagnosesForAdmission     Capability = "diagnoses_for_admission"
	CapabilityPrescriptionsForAdmission Capability = "prescriptions_for_admission"
	CapabilityNotesForAdmission         Capability = "notes_for_admission"
)

// DispatchRule binds an intent to its retrieval capability and the argument
// it requires.
type DispatchRule struct {
	Intent      Intent
	RequiredArg ArgKind
	Capability  Capability
}

// DefaultRules returns the static dispatch table. Intents in the schema but
// absent here classify normally and route to the unrecognized-intent
// message without a store call.
func DefaultRules() map[Intent]DispatchRule {
	rules := []DispatchRule{
		{Intent: AppointmentsToday, RequiredArg: ArgNone, Capability: CapabilityAppointmentsToday},
		{Intent: AppointmentsOnDate, RequiredArg: ArgDate, Capability: CapabilityAppointmentsOnDate},
		{Intent: StaffInfo, RequiredArg: ArgNone, Capability: CapabilityActiveStaff},
		{Intent: PatientInfo, RequiredArg: ArgPatientName, Capability: CapabilityPatientHistory},
		{Intent: GetPatientDOB, RequiredArg: ArgPatientName, Capability: CapabilityPatientDOB},
		{Intent: GetPatientContact, RequiredArg: ArgPatientName, Capability: CapabilityPatientContact},
		{Intent: AdmissionsForPatient, RequiredArg: ArgPatientID, Capability: CapabilityAdmissionsForPatient},
		{Intent: LabApplicationsForPatient, RequiredArg: ArgPatientID, Capability: CapabilityLabApplicationsForPatient},
		{Intent: LabItemsList, RequiredArg: ArgNone, Capability: CapabilityLabItems},
		{Intent: DiagnosisForAdmission, RequiredArg: ArgAdmissionID, Capability: CapabilityDiagnosesForAdmission},
		{Intent: PrescriptionsForAdmission, RequiredArg: ArgAdmissionID, Capability: CapabilityPrescriptionsForAdmission},
		{Intent: NotesForAdmission, RequiredArg: ArgAdmissionID, Capability: CapabilityNotesForAdmission},
	}

	table := make(map[Intent]DispatchRule, len(rules))
	for _, rule := range rules {
		table[rule.Intent] = rule
	}
	return table
}
