package conference

import "time"

// ISODate is the only date layout sources are allowed to emit.
const ISODate = "2006-01-02"

// ParseDate parses an ISO "YYYY-MM-DD" string.
// Returns the zero time if the string is empty or malformed; callers treat
// that as "date unknown" rather than an error.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(ISODate, s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DaysUntil counts whole calendar days from now's UTC date to the target
// date. Both sides are truncated to midnight so "five days from today" is 5
// regardless of the time of day the pipeline runs.
func DaysUntil(target time.Time, now time.Time) int {
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today).Hours() / 24)
}

// MonthLabel formats a start date as the month bucket label, e.g.
// "January 2026". Missing or malformed dates go to the reserved "TBD" bucket.
func MonthLabel(startDate string) string {
	t := ParseDate(startDate)
	if t.IsZero() {
		return LabelTBD
	}
	return t.Format("January 2006")
}
