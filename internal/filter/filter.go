// Package filter narrows conference listings down for search.
//
// A filter combines independent criteria; a record must satisfy all of them.
// Criteria left empty are inactive, so a zero filter matches everything.
//
// Example usage:
//
//	f := filter.New()
//	f.Domains = []string{"ai"}
//	f.OpenCFPOnly = true
//	hits := f.Apply(confs)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/confab-dev/confab/internal/conference"
)

// Filter represents conference search criteria.
type Filter struct {
	// Date range on the start date, inclusive. Undated records only match
	// when no range is set.
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Name terms, case-insensitive substring match, any-of.
	Names []string `json:"names,omitempty"`

	// Domain codes, matched against domain and subdomains, any-of.
	Domains []string `json:"domains,omitempty"`

	// Tags, exact match ignoring case, any-of.
	Tags []string `json:"tags,omitempty"`

	// Countries, case-insensitive substring match on the location, any-of.
	Countries []string `json:"countries,omitempty"`

	// OnlineOnly keeps only remote-friendly conferences.
	OnlineOnly bool `json:"online_only,omitempty"`

	// OpenCFPOnly keeps only conferences still accepting talks.
	OpenCFPOnly bool `json:"open_cfp_only,omitempty"`
}

// New creates an empty filter that matches all conferences.
func New() *Filter {
	return &Filter{}
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Names) == 0 &&
		len(f.Domains) == 0 &&
		len(f.Tags) == 0 &&
		len(f.Countries) == 0 &&
		!f.OnlineOnly &&
		!f.OpenCFPOnly
}

// Matches reports whether a conference passes all active criteria.
func (f *Filter) Matches(c *conference.Conference) bool {
	if f.IsEmpty() {
		return true
	}

	if f.DateFrom != nil || f.DateTo != nil {
		start := conference.ParseDate(c.StartDate)
		if start.IsZero() {
			return false
		}
		if f.DateFrom != nil && start.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && start.After(*f.DateTo) {
			return false
		}
	}

	if f.OnlineOnly && !c.Online {
		return false
	}
	if f.OpenCFPOnly && !c.HasOpenCFP() {
		return false
	}

	if len(f.Names) > 0 && !anySubstring(c.Name, f.Names) {
		return false
	}
	if len(f.Domains) > 0 && !f.matchesDomain(c) {
		return false
	}
	if len(f.Tags) > 0 && !anyTag(c.Tags, f.Tags) {
		return false
	}
	if len(f.Countries) > 0 {
		location := c.Location.Country
		if location == "" {
			location = c.Location.Raw
		}
		if !anySubstring(location, f.Countries) {
			return false
		}
	}

	return true
}

func (f *Filter) matchesDomain(c *conference.Conference) bool {
	for _, want := range f.Domains {
		if strings.EqualFold(c.Domain, want) {
			return true
		}
		for _, sub := range c.SubDomains {
			if strings.EqualFold(sub, want) {
				return true
			}
		}
	}
	return false
}

func anySubstring(value string, terms []string) bool {
	lower := strings.ToLower(value)
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func anyTag(tags, wanted []string) bool {
	for _, tag := range tags {
		for _, want := range wanted {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}

// Apply returns the conferences matching all active criteria. An empty filter
// returns the input unchanged.
func (f *Filter) Apply(confs []*conference.Conference) []*conference.Conference {
	if f.IsEmpty() {
		return confs
	}

	var filtered []*conference.Conference
	for _, c := range confs {
		if f.Matches(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// String returns a human-readable description of the active criteria.
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string
	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("Jan 2, 2006")))
	}
	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("Jan 2, 2006")))
	}
	if len(f.Names) > 0 {
		parts = append(parts, fmt.Sprintf("Names: %s", strings.Join(f.Names, ", ")))
	}
	if len(f.Domains) > 0 {
		parts = append(parts, fmt.Sprintf("Domains: %s", strings.Join(f.Domains, ", ")))
	}
	if len(f.Tags) > 0 {
		parts = append(parts, fmt.Sprintf("Tags: %s", strings.Join(f.Tags, ", ")))
	}
	if len(f.Countries) > 0 {
		parts = append(parts, fmt.Sprintf("Countries: %s", strings.Join(f.Countries, ", ")))
	}
	if f.OnlineOnly {
		parts = append(parts, "Online only")
	}
	if f.OpenCFPOnly {
		parts = append(parts, "Open CFPs only")
	}
	return strings.Join(parts, " | ")
}
