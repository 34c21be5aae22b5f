package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/confab-dev/confab/internal/conference"
)

// ParseDateRange parses a date range expression into start and end times.
//
// Supported formats:
//   - "2026-03-01..2026-06-30" - explicit ISO range
//   - "2026-03"                - entire calendar month
//   - "March" or "Mar"         - entire month, year inferred
//   - "March 2026"             - entire month of a given year
//   - "Mar 1-15"               - day range within a month
//
// The inferred year is the current one, or the next when the month has
// already passed. Start is at 00:00:00 UTC, end at 23:59:59 UTC.
func ParseDateRange(input string) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	if from, to, ok := parseISORange(input); ok {
		if from.After(*to) {
			return nil, nil, fmt.Errorf("start date must be before end date")
		}
		return from, to, nil
	}

	if m := isoMonthRe.FindStringSubmatch(input); m != nil {
		year, _ := strconv.Atoi(m[1])
		monthNum, _ := strconv.Atoi(m[2])
		if monthNum < 1 || monthNum > 12 {
			return nil, nil, fmt.Errorf("invalid month: %s", m[2])
		}
		from, to := monthSpan(year, time.Month(monthNum))
		return &from, &to, nil
	}

	if m := dayRangeRe.FindStringSubmatch(input); m != nil {
		month := parseMonth(m[1])
		if month == 0 {
			return nil, nil, fmt.Errorf("invalid month: %s", m[1])
		}
		day1, _ := strconv.Atoi(m[2])
		day2, _ := strconv.Atoi(m[3])
		if day1 < 1 || day1 > 31 || day2 < 1 || day2 > 31 || day1 > day2 {
			return nil, nil, fmt.Errorf("invalid day range: %s-%s", m[2], m[3])
		}
		year := inferYear(month)
		from := time.Date(year, month, day1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, month, day2, 23, 59, 59, 0, time.UTC)
		return &from, &to, nil
	}

	if m := namedMonthRe.FindStringSubmatch(input); m != nil {
		month := parseMonth(m[1])
		if month == 0 {
			return nil, nil, fmt.Errorf("invalid month: %s", m[1])
		}
		year := 0
		if m[2] != "" {
			year, _ = strconv.Atoi(m[2])
		} else {
			year = inferYear(month)
		}
		from, to := monthSpan(year, month)
		return &from, &to, nil
	}

	return nil, nil, fmt.Errorf("invalid date range %q: use '2026-03-01..2026-06-30', '2026-03', or 'March'", input)
}

var (
	isoMonthRe   = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	dayRangeRe   = regexp.MustCompile(`(?i)^([a-z]+)\s+(\d{1,2})\s*-\s*(\d{1,2})$`)
	namedMonthRe = regexp.MustCompile(`(?i)^([a-z]+)(?:\s+(\d{4}))?$`)
)

func parseISORange(input string) (*time.Time, *time.Time, bool) {
	parts := strings.SplitN(input, "..", 2)
	if len(parts) != 2 {
		return nil, nil, false
	}

	from := conference.ParseDate(strings.TrimSpace(parts[0]))
	to := conference.ParseDate(strings.TrimSpace(parts[1]))
	if from.IsZero() || to.IsZero() {
		return nil, nil, false
	}

	to = to.Add(24*time.Hour - time.Second)
	return &from, &to, true
}

func monthSpan(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, month+1, 0, 23, 59, 59, 0, time.UTC)
	return from, to
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

func parseMonth(name string) time.Month {
	return monthNames[strings.ToLower(strings.TrimSpace(name))]
}

// inferYear picks this year, or next when the month has already passed.
func inferYear(month time.Month) int {
	now := time.Now().UTC()
	year := now.Year()
	if month < now.Month() {
		year++
	}
	return year
}
