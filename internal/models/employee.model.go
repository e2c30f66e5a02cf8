package models

// Department and Position are the only values the form offers; anything else
// is rejected by field validation.
const (
	DepartmentAnalytics = "Analytics"
	DepartmentTech      = "Tech"

	PositionJunior = "Junior"
	PositionMedior = "Medior"
	PositionSenior = "Senior"
)

func Departments() []string {
	return []string{DepartmentAnalytics, DepartmentTech}
}

func Positions() []string {
	return []string{PositionJunior, PositionMedior, PositionSenior}
}

func ValidDepartment(value string) bool {
	return value == DepartmentAnalytics || value == DepartmentTech
}

func ValidPosition(value string) bool {
	return value == PositionJunior || value == PositionMedior || value == PositionSenior
}

// Employee is the persisted directory record. IDs are stringified integers
// assigned monotonically (max existing numeric id + 1); deleted ids are never
// reused. Phone is stored canonically as "+" followed by digits only.
//
// Selected is row-selection UI state carried on the record in memory but
// never persisted.
type Employee struct {
	ID             string `gorm:"type:varchar(64);primaryKey" json:"id"`
	FirstName      string `gorm:"type:varchar(255);not null"  json:"firstName"`
	LastName       string `gorm:"type:varchar(255);not null"  json:"lastName"`
	EmploymentDate string `gorm:"type:varchar(255)"           json:"employmentDate"`
	BirthDate      string `gorm:"type:varchar(255)"           json:"birthDate"`
	Phone          string `gorm:"type:varchar(255);not null"  json:"phone"`
	Email          string `gorm:"type:varchar(255);not null"  json:"email"`
	Department     string `gorm:"type:varchar(64);not null"   json:"department"`
	Position       string `gorm:"type:varchar(64);not null"   json:"position"`

	Selected bool `gorm:"-" json:"selected,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// Fields returns the string form of every persisted field, in column order.
// Search matches against these.
func (e Employee) Fields() []string {
	return []string{
		e.ID,
		e.FirstName,
		e.LastName,
		e.EmploymentDate,
		e.BirthDate,
		e.Phone,
		e.Email,
		e.Department,
		e.Position,
	}
}

// Equals compares every persisted field, ignoring the transient Selected
// flag. The form's dirty check relies on this.
func (e Employee) Equals(other Employee) bool {
	e.Selected = false
	other.Selected = false
	return e == other
}
