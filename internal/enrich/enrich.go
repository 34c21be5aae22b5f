// Package enrich runs the per-record enrichment stage: domain classification,
// geocoding, CFP status derivation, and ID assignment.
package enrich

import (
	"time"

	"github.com/confab-dev/confab/internal/classify"
	"github.com/confab-dev/confab/internal/conference"
	"github.com/confab-dev/confab/internal/geo"
)

// Enrich mutates every record in place. A fetcher-supplied domain takes
// precedence over the classifier, but sub-domains and tags are always
// recomputed; the classifier sees the fetcher's tags before they are replaced.
// Malformed dates never fail a record, the derived fields just stay absent.
func Enrich(records []*conference.Conference, now time.Time) {
	for _, rec := range records {
		classifyRecord(rec)
		geocodeRecord(rec)
		deriveCFPStatus(rec, now)
		rec.ID = conference.GenerateID(rec.Name, rec.StartDate, rec.URL)
	}
}

func classifyRecord(rec *conference.Conference) {
	primary, subs := classify.Classify(rec.Name, rec.Tags)

	if rec.Domain == "" {
		rec.Domain = primary
		rec.SubDomains = subs
	} else {
		// The fetcher's domain wins; the classifier's primary joins the
		// sub-domains when it disagrees.
		merged := make([]string, 0, len(subs)+1)
		if primary != rec.Domain && primary != classify.GeneralDomain {
			merged = append(merged, primary)
		}
		for _, s := range subs {
			if s != rec.Domain && len(merged) < 3 {
				merged = append(merged, s)
			}
		}
		if len(merged) == 0 {
			merged = nil
		}
		rec.SubDomains = merged
	}

	rec.Tags = classify.ExtractTags(rec.Name, "")
}

func geocodeRecord(rec *conference.Conference) {
	p := geo.Geocode(rec.Location.City, rec.Location.Country)
	if p == nil {
		return
	}
	rec.Location.Lat = &p.Lat
	rec.Location.Lng = &p.Lng
}

func deriveCFPStatus(rec *conference.Conference, now time.Time) {
	if rec.CFP == nil || rec.CFP.EndDate == "" {
		return
	}
	end := conference.ParseDate(rec.CFP.EndDate)
	if end.IsZero() {
		// Unparseable deadline: no days remaining, no status.
		rec.CFP.DaysRemaining = nil
		rec.CFP.Status = ""
		return
	}

	days := conference.DaysUntil(end, now)
	rec.CFP.DaysRemaining = &days
	if days > 0 {
		rec.CFP.Status = conference.CFPOpen
	} else {
		rec.CFP.Status = conference.CFPClosed
	}
}
