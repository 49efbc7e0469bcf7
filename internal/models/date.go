package models

import "time"

// DateLayout is the storage format for deadlines
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or zone component
type Date struct {
	t time.Time
}

// Today returns the local calendar date of now
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return NewDate(y, m, d)
}

// NewDate builds a Date from its parts
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a yyyy-MM-dd string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Before reports whether d is an earlier day than other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// AddDays returns the date n days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// IsPastDue reports whether deadline falls strictly before today.
// Deadlines that do not parse are compared as strings against today's
// yyyy-MM-dd form, which is how they are compared in storage.
func IsPastDue(deadline string, today Date) bool {
	d, err := ParseDate(deadline)
	if err != nil {
		return deadline < today.String()
	}
	return d.Before(today)
}
