// Package calendar renders conference listings as iCalendar files.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/confab-dev/confab/internal/conference"
)

// GenerateICS renders the dated conferences as one VCALENDAR. Records without
// a parseable start date are skipped; a conference without an end date gets a
// single all-day event.
func GenerateICS(confs []*conference.Conference, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//confab//conference-aggregator//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, c := range confs {
		writeEvent(&ics, c, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, c *conference.Conference, now time.Time) {
	start := conference.ParseDate(c.StartDate)
	if start.IsZero() {
		return
	}

	// All-day events: DTEND is exclusive, so a one-day conference ends the
	// next morning.
	end := conference.ParseDate(c.EndDate)
	if end.IsZero() {
		end = start
	}
	end = end.AddDate(0, 0, 1)

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s@confab\r\n", c.ID))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", now.UTC().Format("20060102T150405Z")))
	ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102")))
	ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", end.Format("20060102")))
	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(c.Name)))

	if desc := eventDescription(c); desc != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(desc)))
	}
	if loc := eventLocation(c); loc != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(loc)))
	}
	if c.URL != "" {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", c.URL))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

func eventDescription(c *conference.Conference) string {
	var lines []string
	if c.Domain != "" {
		lines = append(lines, fmt.Sprintf("Domain: %s", c.Domain))
	}
	if len(c.Tags) > 0 {
		lines = append(lines, fmt.Sprintf("Tags: %s", strings.Join(c.Tags, ", ")))
	}
	if c.CFP != nil && c.CFP.EndDate != "" {
		lines = append(lines, fmt.Sprintf("CFP deadline: %s", c.CFP.EndDate))
	}
	return strings.Join(lines, "\n")
}

func eventLocation(c *conference.Conference) string {
	if c.Online {
		return "Online"
	}
	return c.Location.Raw
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
