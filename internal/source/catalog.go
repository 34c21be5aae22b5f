package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/confab-dev/confab/internal/conference"
)

// catalogSeries is one recurring conference series in a curated catalog.
type catalogSeries struct {
	name         string
	series       string
	month        int    // typical month of the event
	day          int    // placeholder day within that month
	domain       string
	url          string
	locationRaw  string
	biennialOdd  bool // runs only in odd years (e.g. ICCV)
	biennialEven bool // runs only in even years
	cfpLeadTime  int  // months between CFP deadline and the event; 0 = no deadline
	extraTags    []string
}

// Catalog is a static curated source: the cartesian product of a fixed series
// list and the configured target years, with deterministic placeholder dates.
// Catalogs keep baseline coverage when live sources are down.
type Catalog struct {
	name   string
	tag    string // leading tag on every record; defaults to name
	series []catalogSeries
	years  []int
}

// Name implements Source.
func (c *Catalog) Name() string { return c.name }

// Fetch implements Source. It never fails: the data is in-process.
func (c *Catalog) Fetch(_ context.Context) ([]*conference.Conference, error) {
	var records []*conference.Conference

	for _, s := range c.series {
		for _, year := range c.years {
			if s.biennialOdd && year%2 == 0 {
				continue
			}
			if s.biennialEven && year%2 == 1 {
				continue
			}
			records = append(records, c.expand(s, year))
		}
	}

	return validated(records), nil
}

func (c *Catalog) expand(s catalogSeries, year int) *conference.Conference {
	day := s.day
	if day == 0 {
		day = 15
	}

	locationRaw := s.locationRaw
	if locationRaw == "" {
		locationRaw = "TBD"
	}

	cfp := &conference.CFP{URL: s.url}
	if s.cfpLeadTime > 0 {
		cfpMonth := s.month - s.cfpLeadTime
		cfpYear := year
		if cfpMonth <= 0 {
			cfpMonth += 12
			cfpYear--
		}
		cfp.EndDate = fmt.Sprintf("%04d-%02d-01", cfpYear, cfpMonth)
	}

	leadTag := c.tag
	if leadTag == "" {
		leadTag = c.name
	}
	tags := make([]string, 0, 2+len(s.extraTags))
	tags = append(tags, leadTag, strings.ToLower(s.series))
	tags = append(tags, s.extraTags...)
	if len(tags) > 5 {
		tags = tags[:5]
	}

	return &conference.Conference{
		Name:      fmt.Sprintf("%s %d (%s)", s.name, year, s.series),
		URL:       s.url,
		StartDate: fmt.Sprintf("%04d-%02d-%02d", year, s.month, day),
		Location:  conference.Location{Raw: locationRaw},
		CFP:       cfp,
		Domain:    s.domain,
		Tags:      tags,
		Source:    c.name,
	}
}
