package service

import (
	"time"

	"github.com/deppfellow/vbapi/internal/model"
	"github.com/deppfellow/vbapi/internal/validation"
)

const (
	employeeMaxAgeYears     = 65
	employeeSeniorAgeYears  = 30
	employeeMinSalary       = 50.0
	employeeMaxSalary       = 400.0
	employeeSeniorMinSalary = 200.0
)

// EmployeeValidator applies the Employee rule set:
//
//   - Name: not empty, 10..250 characters.
//   - DateOfBirth: not empty, at most 65 years before today.
//   - Email: valid address syntax.
//   - Phone: matches validation.PhonePattern.
//   - HourlySalary: within [50, 400]; at least 200 when DateOfBirth is
//     strictly before today minus 30 years, otherwise at least 50.
type EmployeeValidator struct {
	rules *validation.RuleSet[*model.Employee]
	clock Clock
	loc   *time.Location
}

// NewEmployeeValidator creates a validator whose "today" is the calendar
// date of clock() in loc.
func NewEmployeeValidator(clock Clock, loc *time.Location) *EmployeeValidator {
	v := &EmployeeValidator{clock: clock, loc: loc}

	rules := validation.NewRuleSet[*model.Employee]()

	rules.RuleFor("Name").
		Must(validation.CodeNotEmpty, func(e *model.Employee) bool {
			return !validation.IsBlank(e.Name)
		}).
		Must(validation.CodeLength, func(e *model.Employee) bool {
			return validation.LengthBetween(e.Name, 10, 250)
		}).
		WithMessage("Invalid Name")

	rules.RuleFor("DateOfBirth").
		Must(validation.CodeNotEmpty, func(e *model.Employee) bool {
			return !e.DateOfBirth.IsZero()
		}).
		Must(validation.CodeMust, func(e *model.Employee) bool {
			return !e.DateOfBirth.Before(v.cutoff(employeeMaxAgeYears, e.DateOfBirth))
		}).
		WithMessage("Birthdate is not valid.")

	rules.RuleFor("Email").
		Must(validation.CodeEmail, func(e *model.Employee) bool {
			return validation.IsEmail(e.Email)
		}).
		WithMessage("Email address is not valid.")

	rules.RuleFor("Phone").
		Must(validation.CodeMatches, func(e *model.Employee) bool {
			return validation.IsPhone(e.Phone)
		}).
		WithMessage("Phone is not valid.")

	rules.RuleFor("HourlySalary").
		Must(validation.CodeInclusiveBetween, func(e *model.Employee) bool {
			return validation.InclusiveBetween(e.HourlySalary, employeeMinSalary, employeeMaxSalary)
		}).
		WithMessage("Hourly salary does not fall within allowed range.").
		Must(validation.CodeMust, func(e *model.Employee) bool {
			return e.HourlySalary >= v.minimumSalary(e.DateOfBirth)
		}).
		WithMessage("Minimum hourly salary is not valid.")

	v.rules = rules
	return v
}

// Validate returns nil or errs.ValidationErrors.
func (v *EmployeeValidator) Validate(e *model.Employee) error {
	return v.rules.Validate(e)
}

// minimumSalary is the salary floor for an employee born on dob.
// Exactly 30 years before today is not "over 30".
func (v *EmployeeValidator) minimumSalary(dob model.Date) float64 {
	if dob.Before(v.cutoff(employeeSeniorAgeYears, dob)) {
		return employeeSeniorMinSalary
	}
	return employeeMinSalary
}

// cutoff is midnight of today minus years, expressed in dob's location so
// date-only values compare as calendar dates.
func (v *EmployeeValidator) cutoff(years int, dob model.Date) time.Time {
	today := v.clock().In(v.loc)
	return validation.YearsBefore(today, years, dob.Location())
}
