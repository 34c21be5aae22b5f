package conference

import (
	"reflect"
	"testing"
)

func TestDeduplicateByNormalizedNameAndYear(t *testing.T) {
	records := []*Conference{
		{Name: "PyCon US", StartDate: "2026-05-01", Source: "a"},
		{Name: "pycon us", StartDate: "2026-05-03", Source: "b"},
	}

	out := Deduplicate(records)
	if len(out) != 1 {
		t.Fatalf("expected 1 record after dedup, got %d", len(out))
	}
}

func TestDeduplicateNearDuplicateNames(t *testing.T) {
	records := []*Conference{
		{Name: "PyCon US 2026", Source: "a"},
		{Name: "PyCon US 2026 (PyCon)", Source: "b"},
	}

	out := Deduplicate(records)
	if len(out) != 1 {
		t.Fatalf("expected near-duplicate names to collapse, got %d records", len(out))
	}
}

func TestDeduplicateByURL(t *testing.T) {
	records := []*Conference{
		{Name: "KubeCon + CloudNativeCon Europe", URL: "https://kubecon.io", Source: "a"},
		{Name: "KubeCon EU", URL: "https://kubecon.io", Source: "b"},
	}

	out := Deduplicate(records)
	if len(out) != 1 {
		t.Fatalf("expected URL match to collapse records, got %d", len(out))
	}
}

func TestDeduplicateSharedSeriesURLKeepsEditions(t *testing.T) {
	records := []*Conference{
		{Name: "CVPR 2025", StartDate: "2025-06-15", URL: "https://cvpr.thecvf.com", Source: "a"},
		{Name: "CVPR 2026", StartDate: "2026-06-15", URL: "https://cvpr.thecvf.com", Source: "a"},
	}

	out := Deduplicate(records)
	if len(out) != 2 {
		t.Fatalf("editions sharing a series URL must stay distinct, got %d records", len(out))
	}
}

func TestDeduplicateKeepsDistinctYears(t *testing.T) {
	records := []*Conference{
		{Name: "FOSDEM", StartDate: "2025-02-01", Source: "a"},
		{Name: "FOSDEM", StartDate: "2026-02-01", Source: "a"},
	}

	out := Deduplicate(records)
	if len(out) != 2 {
		t.Fatalf("different editions must not merge, got %d records", len(out))
	}
}

func TestDeduplicateMergePrefersPopulatedRecord(t *testing.T) {
	sparse := &Conference{Name: "DevOpsDays Chicago 2026", Source: "sparse"}
	rich := &Conference{
		Name:      "DevOpsDays Chicago 2026",
		URL:       "https://devopsdays.org/chicago",
		StartDate: "2026-08-04",
		Location:  Location{City: "Chicago", Country: "USA", Raw: "Chicago, USA"},
		CFP:       &CFP{URL: "https://devopsdays.org/chicago/cfp", EndDate: "2026-05-01"},
		Source:    "rich",
	}

	// Sparse record arrives first; the merge must still prefer the rich one.
	out := Deduplicate([]*Conference{sparse, rich})
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}

	got := out[0]
	if got.Source != "rich" {
		t.Errorf("expected the more populated record as base, got source %q", got.Source)
	}
	if got.StartDate != "2026-08-04" || got.CFP == nil || got.CFP.EndDate != "2026-05-01" {
		t.Errorf("merged record lost populated fields: %+v", got)
	}
}

func TestDeduplicateFillsMissingFields(t *testing.T) {
	first := &Conference{
		Name:      "RustConf 2026",
		StartDate: "2026-09-10",
		URL:       "https://rustconf.com",
		Source:    "a",
	}
	second := &Conference{
		Name:     "RustConf 2026",
		Location: Location{City: "Portland", Country: "USA", Raw: "Portland, USA"},
		Twitter:  "@rustconf",
		Source:   "b",
	}

	out := Deduplicate([]*Conference{first, second})
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].Location.City != "Portland" {
		t.Error("expected missing location filled from the duplicate")
	}
	if out[0].Twitter != "@rustconf" {
		t.Error("expected missing twitter handle filled from the duplicate")
	}
	if out[0].StartDate != "2026-09-10" {
		t.Error("base record fields must survive the merge")
	}
}

func TestDeduplicateBridgingRecordUnionsEntries(t *testing.T) {
	records := []*Conference{
		{Name: "ScaleConf 2026", Source: "a"},
		{Name: "Infra Summit 2026", URL: "https://scaleconf.example.com", Source: "b"},
		{Name: "scaleconf", StartDate: "2026-03-01", URL: "https://scaleconf.example.com", Source: "c"},
	}

	// The third record matches the first by name and year and the second
	// by URL, so all three describe one conference.
	once := Deduplicate(records)
	if len(once) != 1 {
		t.Fatalf("expected bridged entries to union into 1 record, got %d", len(once))
	}

	twice := Deduplicate(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("dedup is not idempotent: %v vs %v", once, twice)
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	records := []*Conference{
		{Name: "PyCon US", StartDate: "2026-05-01", Source: "a"},
		{Name: "pycon us", StartDate: "2026-05-03", Source: "b"},
		{Name: "RustConf 2026", URL: "https://rustconf.com", Source: "a"},
		{Name: "Totally Different Conf", StartDate: "2026-07-01", Source: "c"},
	}

	once := Deduplicate(records)
	twice := Deduplicate(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("dedup is not idempotent: %v vs %v", once, twice)
	}
}
