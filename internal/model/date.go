package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts are tried in order when decoding a Date.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a point in time that keeps the exact text it was decoded from,
// so an echoed record carries the value byte for byte as the client sent
// it. The parsed Time is what the rules compare.
//
// Layouts without an offset are read as UTC. The zero Date is "empty".
type Date struct {
	time.Time
	raw string
}

// NewDate returns midnight UTC of the given calendar day, rendered as
// YYYY-MM-DD.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Time: t, raw: t.Format(time.DateOnly)}
}

// ParseDate parses s with the first matching supported layout.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t, raw: s}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
}

// String returns the decoded text, or RFC 3339 for dates built in code.
func (d Date) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.Time.Format(time.RFC3339Nano)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dateOfBirth must be a string: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
