package conference

import (
	"crypto/sha1"
	"fmt"
	"regexp"
	"strings"
)

// CFP statuses derived from the deadline, never taken from a source.
const (
	CFPOpen   = "open"
	CFPClosed = "closed"
)

// Domains is the fixed domain enumeration. "general" is the fallback for
// records nothing else claims.
var Domains = []string{
	"ai", "software", "security", "web", "mobile",
	"cloud", "data", "devops", "opensource", "academic", "general",
}

// Location describes where a conference takes place. Lat/Lng are set by the
// geocoder only when a lookup succeeds.
type Location struct {
	City    string   `json:"city"`
	Country string   `json:"country"`
	Raw     string   `json:"raw"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// CFP is a call-for-papers window. DaysRemaining and Status are derived by the
// enricher from EndDate; sources only supply URL and EndDate.
type CFP struct {
	URL           string `json:"url"`
	EndDate       string `json:"endDate,omitempty"`
	DaysRemaining *int   `json:"daysRemaining,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Conference is the one real entity in the system. Dates are ISO "YYYY-MM-DD"
// strings; empty means absent. Optional fields stay empty when a source does
// not know them and later stages tolerate that.
type Conference struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Location   Location `json:"location"`
	Online     bool     `json:"online"`
	CFP        *CFP     `json:"cfp,omitempty"`
	Domain     string   `json:"domain,omitempty"`
	SubDomains []string `json:"subDomains,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Twitter    string   `json:"twitter,omitempty"`
	Source     string   `json:"source"`
}

// GenerateID creates a deterministic ID from the fields that identify a
// conference. Same name, start date, and URL always hash to the same 12 hex
// characters, which is what makes snapshot diffing possible.
func GenerateID(name, startDate, url string) string {
	h := sha1.New()
	h.Write([]byte(name + "|" + startDate + "|" + url))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

var (
	trailingParens = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	yearToken      = regexp.MustCompile(`\b20\d{2}\b`)
	nonWord        = regexp.MustCompile(`[^a-z0-9\s]+`)
	spaces         = regexp.MustCompile(`\s+`)
)

// NormalizeName reduces a display title to a comparable key: lowercase, the
// trailing parenthetical stripped ("PyCon US 2026 (PyCon)" and "PyCon US 2026"
// must collapse), punctuation and 4-digit year tokens removed, whitespace
// collapsed.
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = trailingParens.ReplaceAllString(n, "")
	n = yearToken.ReplaceAllString(n, " ")
	n = nonWord.ReplaceAllString(n, " ")
	n = spaces.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}

// Year extracts the edition year of a conference, preferring the start date
// and falling back to a year token in the name. Empty when neither is known.
func (c *Conference) Year() string {
	if len(c.StartDate) >= 4 && !ParseDate(c.StartDate).IsZero() {
		return c.StartDate[:4]
	}
	if m := yearToken.FindString(c.Name); m != "" {
		return m
	}
	return ""
}

// HasOpenCFP reports whether the enricher marked this record's CFP open.
func (c *Conference) HasOpenCFP() bool {
	return c.CFP != nil && c.CFP.Status == CFPOpen
}

// HasCoordinates reports whether the geocoder resolved this record.
func (c *Conference) HasCoordinates() bool {
	return c.Location.Lat != nil && c.Location.Lng != nil
}
