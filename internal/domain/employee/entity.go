package employee

import (
	"strings"

	"github.com/shopspring/decimal"
)

// UserType is the payroll classification of an employee
type UserType string

const (
	UserTypeExecutive    UserType = "Executive"
	UserTypeNonExecutive UserType = "NonExecutive"
)

func (t UserType) IsValid() bool {
	return t == UserTypeExecutive || t == UserTypeNonExecutive
}

// Designation values as stored in employees.designation
const (
	DesignationLaborer      = "laborer"
	DesignationSupervisor   = "Supervisor"
	DesignationSiteEngineer = "se"
	RoleLaborer             = "laborer"
	RoleSupervisor          = "supervisor"
)

// SupervisorDesignations may lead a roster shift.
var SupervisorDesignations = []string{DesignationSupervisor, DesignationSiteEngineer}

type Employee struct {
	ID            int64
	EmpNo         string
	Name          string
	Email         *string
	UserType      UserType
	Designation   *string
	PlantID       *int64
	MonthlySalary decimal.Decimal
	BankCode      *string
	BranchCode    *string
	AccountNumber *string
	NICNo         *string
	MobileNo      *string

	// Joined fields
	PlantName *string
}

// RosterRole maps the designation onto the two roster roles.
func (e Employee) RosterRole() string {
	if e.Designation != nil && strings.EqualFold(*e.Designation, DesignationLaborer) {
		return RoleLaborer
	}
	return RoleSupervisor
}

type Plant struct {
	ID   int64
	Name string
}
