package model

// Employee is the body of POST /api/employee. Every field is mandatory on
// the wire; an absent field decodes to its zero value and is then reported
// by the validator.
type Employee struct {
	Name         string  `json:"name"`
	DateOfBirth  Date    `json:"dateOfBirth"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	HourlySalary float64 `json:"hourlySalary"`
}
