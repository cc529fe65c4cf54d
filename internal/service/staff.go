package service

import (
	"github.com/deppfellow/vbapi/internal/model"
	"github.com/deppfellow/vbapi/internal/validation"
	"github.com/shopspring/decimal"
)

var (
	staffMinSalary = decimal.NewFromInt(30)
	staffMaxSalary = decimal.NewFromInt(400)
)

// StaffValidator applies the Staff rule set. Email, Phone and HourlySalary
// are only checked when present; Name is always checked, so an absent Name
// is reported as empty.
type StaffValidator struct {
	rules *validation.RuleSet[*model.Staff]
}

func NewStaffValidator() *StaffValidator {
	rules := validation.NewRuleSet[*model.Staff]()

	rules.RuleFor("Name").
		Must(validation.CodeNotEmpty, func(s *model.Staff) bool {
			return validation.NotEmpty(s.Name)
		}).
		Must(validation.CodeLength, func(s *model.Staff) bool {
			return s.Name == nil || validation.LengthBetween(*s.Name, 10, 250)
		}).
		WithMessage("Name is not valid.")

	rules.RuleFor("Email").
		Must(validation.CodeEmail, func(s *model.Staff) bool {
			return validation.IsEmail(*s.Email)
		}).
		When(func(s *model.Staff) bool { return s.Email != nil }).
		WithMessage("Email address is not valid.")

	rules.RuleFor("Phone").
		Must(validation.CodeMatches, func(s *model.Staff) bool {
			return validation.IsPhone(*s.Phone)
		}).
		When(func(s *model.Staff) bool { return validation.NotEmpty(s.Phone) }).
		WithMessage("Phone is not valid.")

	rules.RuleFor("HourlySalary").
		Must(validation.CodeInclusiveBetween, func(s *model.Staff) bool {
			return validation.DecimalInclusiveBetween(s.HourlySalary.Decimal, staffMinSalary, staffMaxSalary)
		}).
		When(func(s *model.Staff) bool { return s.HourlySalary.Valid }).
		WithMessage("HourlySalary is not valid.")

	return &StaffValidator{rules: rules}
}

// Validate returns nil or errs.ValidationErrors.
func (v *StaffValidator) Validate(s *model.Staff) error {
	return v.rules.Validate(s)
}
