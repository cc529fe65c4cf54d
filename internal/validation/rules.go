package validation

import (
	"strings"
	"unicode"

	"github.com/deppfellow/vbapi/internal/errs"
)

// Rule kinds reported in errs.FieldError.Code.
const (
	CodeNotEmpty         = "NotEmpty"
	CodeLength           = "Length"
	CodeEmail            = "Email"
	CodeMatches          = "Matches"
	CodeInclusiveBetween = "InclusiveBetween"
	CodeMust             = "Must"
)

// check is one predicate in a property rule chain.
type check[T any] struct {
	code    string
	message string
	valid   func(T) bool
	when    func(T) bool
}

// propertyRule is the ordered chain of checks declared for one field.
type propertyRule[T any] struct {
	field  string
	checks []*check[T]
}

// RuleSet is an ordered list of property rules evaluated against a record
// of type T.
//
// Every check of every rule runs; a failing check never short-circuits the
// rest of its chain. Violations come out in declaration order.
//
// A RuleSet is immutable after construction and safe for concurrent use.
type RuleSet[T any] struct {
	rules []*propertyRule[T]
}

// NewRuleSet creates an empty RuleSet.
func NewRuleSet[T any]() *RuleSet[T] {
	return &RuleSet[T]{}
}

// RuleFor starts a new rule chain for field.
func (s *RuleSet[T]) RuleFor(field string) *RuleBuilder[T] {
	rule := &propertyRule[T]{field: field}
	s.rules = append(s.rules, rule)
	return &RuleBuilder[T]{rule: rule}
}

// Violations evaluates all rules and returns every failure.
func (s *RuleSet[T]) Violations(record T) errs.ValidationErrors {
	var violations errs.ValidationErrors

	for _, rule := range s.rules {
		for _, c := range rule.checks {
			if c.when != nil && !c.when(record) {
				continue
			}
			if c.valid(record) {
				continue
			}
			violations = append(violations, errs.FieldError{
				Field:   rule.field,
				Message: c.message,
				Code:    c.code,
			})
		}
	}

	return violations
}

// Validate returns nil for a valid record and errs.ValidationErrors otherwise.
func (s *RuleSet[T]) Validate(record T) error {
	if violations := s.Violations(record); len(violations) > 0 {
		return violations
	}
	return nil
}

// RuleBuilder appends checks to one property rule.
type RuleBuilder[T any] struct {
	rule *propertyRule[T]
}

// Must appends a check with the rule kind code and a default message.
func (b *RuleBuilder[T]) Must(code string, valid func(T) bool) *RuleBuilder[T] {
	b.rule.checks = append(b.rule.checks, &check[T]{
		code:    code,
		message: DefaultMessage(code, b.rule.field),
		valid:   valid,
	})
	return b
}

// WithMessage replaces the message of the most recently added check only.
func (b *RuleBuilder[T]) WithMessage(message string) *RuleBuilder[T] {
	if n := len(b.rule.checks); n > 0 {
		b.rule.checks[n-1].message = message
	}
	return b
}

// When guards every check added so far in this chain with cond.
func (b *RuleBuilder[T]) When(cond func(T) bool) *RuleBuilder[T] {
	for _, c := range b.rule.checks {
		if c.when == nil {
			c.when = cond
			continue
		}
		prev := c.when
		c.when = func(record T) bool { return prev(record) && cond(record) }
	}
	return b
}

// DefaultMessage returns the message a check of kind code reports when no
// custom message is attached.
func DefaultMessage(code, field string) string {
	name := "'" + DisplayName(field) + "'"

	switch code {
	case CodeNotEmpty:
		return name + " must not be empty."
	case CodeLength:
		return name + " has an invalid length."
	case CodeEmail:
		return name + " is not a valid email address."
	case CodeMatches:
		return name + " is not in the correct format."
	case CodeInclusiveBetween:
		return name + " is out of range."
	default:
		return "The specified condition was not met for " + name + "."
	}
}

// DisplayName splits a property name on case boundaries:
// "DateOfBirth" -> "Date Of Birth", "HourlySalary" -> "Hourly Salary".
func DisplayName(field string) string {
	runes := []rune(field)

	var sb strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune(r)
	}

	return sb.String()
}
