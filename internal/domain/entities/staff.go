package entities

// Staff represents a hospital staff member
type Staff struct {
	StaffID    string `json:"staff_id" db:"staff_id"`
	Name       string `json:"name" db:"name"`
	Role       string `json:"role" db:"role"`
	Department string `json:"department" db:"department"`
	Shift      string `json:"shift" db:"shift"`
	Status     string `json:"status" db:"status"`
}
