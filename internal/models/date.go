package models

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component. On the wire it is the
// literal "YYYY-MM-DD" string.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict ISO YYYY-MM-DD string. Dates that normalize
// during parsing (e.g. 2024-02-30) are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	if t.Format(dateLayout) != s {
		return Date{}, fmt.Errorf("invalid date %q: no such calendar day", s)
	}
	return Date{t: t}, nil
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Format renders the date for display, e.g. "Jan 02, 2006".
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date must be a %q string", dateLayout)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
