package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is shared; *validator.Validate caches struct info and is safe
// for concurrent use.
var validate = validator.New()

// PhonePattern accepts an optional parenthesized 1-4 digit area code, an
// optional separator, 1-4 digits, an optional separator and 1-9 digits.
// Digits and separators are ASCII only, and a trailing newline does not
// match.
var PhonePattern = regexp.MustCompile(`^\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}$`)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NotEmpty reports whether a text value is present and not blank.
func NotEmpty(s *string) bool {
	return s != nil && !IsBlank(*s)
}

// LengthBetween reports whether s has between min and max characters,
// inclusive. Characters are counted as runes.
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// IsPhone reports whether s matches PhonePattern.
func IsPhone(s string) bool {
	return PhonePattern.MatchString(s)
}

// InclusiveBetween reports whether lo <= v <= hi.
func InclusiveBetween(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// DecimalInclusiveBetween reports whether lo <= v <= hi.
func DecimalInclusiveBetween(v, lo, hi decimal.Decimal) bool {
	return v.GreaterThanOrEqual(lo) && v.LessThanOrEqual(hi)
}

// YearsBefore returns midnight of the calendar date that lies years before
// the date of today, in loc. Feb 29 maps to Feb 28 in non-leap years.
func YearsBefore(today time.Time, years int, loc *time.Location) time.Time {
	y, m, d := today.Date()
	y -= years

	if m == time.February && d == 29 && !isLeap(y) {
		d = 28
	}

	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
