package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/confab-dev/confab/internal/conference"
)

func TestGenerateICS(t *testing.T) {
	confs := []*conference.Conference{
		{
			ID:        "abc123def456",
			Name:      "GopherCon Europe 2026",
			URL:       "https://gophercon.eu",
			StartDate: "2026-06-15",
			EndDate:   "2026-06-17",
			Location:  conference.Location{Raw: "Berlin, Germany"},
			Domain:    "software",
			Tags:      []string{"golang"},
			CFP:       &conference.CFP{URL: "https://gophercon.eu/cfp", EndDate: "2026-02-01"},
			Source:    "test",
		},
	}

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ics := GenerateICS(confs, now)

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//confab//conference-aggregator//EN",
		"BEGIN:VEVENT",
		"UID:abc123def456@confab",
		"DTSTAMP:20260102T030405Z",
		"DTSTART;VALUE=DATE:20260615",
		"DTEND;VALUE=DATE:20260618", // exclusive end, day after the last day
		"SUMMARY:GopherCon Europe 2026",
		"DESCRIPTION:Domain: software\\nTags: golang\\nCFP deadline: 2026-02-01",
		"LOCATION:Berlin\\, Germany",
		"URL:https://gophercon.eu",
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("GenerateICS() missing %q", field)
		}
	}

	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS output must use CRLF line endings")
	}
}

func TestGenerateICSSkipsUndated(t *testing.T) {
	confs := []*conference.Conference{
		{ID: "a", Name: "Dated Conf", StartDate: "2026-03-01", Source: "test"},
		{ID: "b", Name: "Undated Conf", Source: "test"},
		{ID: "c", Name: "Garbage Date", StartDate: "soon", Source: "test"},
	}

	ics := GenerateICS(confs, time.Now())

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("got %d events, want 1", got)
	}
	if strings.Contains(ics, "Undated Conf") {
		t.Error("undated conference should be skipped")
	}
}

func TestGenerateICSSingleDayEvent(t *testing.T) {
	confs := []*conference.Conference{
		{ID: "a", Name: "One Day Conf", StartDate: "2026-03-01", Source: "test"},
	}

	ics := GenerateICS(confs, time.Now())

	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20260301") {
		t.Error("missing DTSTART for single-day event")
	}
	if !strings.Contains(ics, "DTEND;VALUE=DATE:20260302") {
		t.Error("single-day event should end the following day")
	}
}

func TestGenerateICSOnlineLocation(t *testing.T) {
	confs := []*conference.Conference{
		{ID: "a", Name: "Remote Summit", StartDate: "2026-04-01", Online: true, Source: "test"},
	}

	ics := GenerateICS(confs, time.Now())

	if !strings.Contains(ics, "LOCATION:Online") {
		t.Error("online conference should carry an Online location")
	}
}
