package domain

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. It serializes as "YYYY-MM-DD", matching the
// value a date form field produces.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// ParseDate parses a "YYYY-MM-DD" string in local time.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// BeforeDay reports whether d falls strictly before the start of the
// calendar day containing now. A date equal to today's day is not before it,
// so posts expiring today stay visible all day.
func (d Date) BeforeDay(now time.Time) bool {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Time.Before(dayStart)
}
