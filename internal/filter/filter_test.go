package filter

import (
	"testing"
	"time"

	"github.com/confab-dev/confab/internal/conference"
)

func sampleConfs() []*conference.Conference {
	return []*conference.Conference{
		{
			Name:      "GopherCon Europe 2026",
			StartDate: "2026-06-15",
			Location:  conference.Location{City: "Berlin", Country: "Germany", Raw: "Berlin, Germany"},
			Domain:    "software",
			Tags:      []string{"golang"},
			CFP:       &conference.CFP{URL: "https://example.com/cfp", Status: conference.CFPOpen},
			Source:    "test",
		},
		{
			Name:       "NeurIPS 2026",
			StartDate:  "2026-12-10",
			Location:   conference.Location{Raw: "Various - North America"},
			Domain:     "ai",
			SubDomains: []string{"academic"},
			Tags:       []string{"ml", "academic"},
			Source:     "test",
		},
		{
			Name:   "Remote Web Summit",
			Online: true,
			Domain: "web",
			Tags:   []string{"javascript"},
			Source: "test",
		},
	}
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	f := New()
	confs := sampleConfs()

	if !f.IsEmpty() {
		t.Error("new filter should be empty")
	}
	if got := f.Apply(confs); len(got) != len(confs) {
		t.Errorf("Apply() returned %d conferences, want %d", len(got), len(confs))
	}
}

func TestFilterCriteria(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name      string
		filter    *Filter
		wantNames []string
	}{
		{
			name:      "domain match",
			filter:    &Filter{Domains: []string{"ai"}},
			wantNames: []string{"NeurIPS 2026"},
		},
		{
			name:      "subdomain match",
			filter:    &Filter{Domains: []string{"academic"}},
			wantNames: []string{"NeurIPS 2026"},
		},
		{
			name:      "tag match ignores case",
			filter:    &Filter{Tags: []string{"GOLANG"}},
			wantNames: []string{"GopherCon Europe 2026"},
		},
		{
			name:      "name substring",
			filter:    &Filter{Names: []string{"gopher"}},
			wantNames: []string{"GopherCon Europe 2026"},
		},
		{
			name:      "country match",
			filter:    &Filter{Countries: []string{"germany"}},
			wantNames: []string{"GopherCon Europe 2026"},
		},
		{
			name:      "country falls back to raw location",
			filter:    &Filter{Countries: []string{"north america"}},
			wantNames: []string{"NeurIPS 2026"},
		},
		{
			name:      "online only",
			filter:    &Filter{OnlineOnly: true},
			wantNames: []string{"Remote Web Summit"},
		},
		{
			name:      "open CFP only",
			filter:    &Filter{OpenCFPOnly: true},
			wantNames: []string{"GopherCon Europe 2026"},
		},
		{
			name:      "date range excludes undated",
			filter:    &Filter{DateFrom: &from, DateTo: &to},
			wantNames: []string{"GopherCon Europe 2026"},
		},
		{
			name:      "combined criteria",
			filter:    &Filter{Domains: []string{"ai"}, Tags: []string{"ml"}},
			wantNames: []string{"NeurIPS 2026"},
		},
		{
			name:      "no match",
			filter:    &Filter{Domains: []string{"security"}},
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sampleConfs())
			if len(got) != len(tt.wantNames) {
				t.Fatalf("Apply() returned %d conferences, want %d", len(got), len(tt.wantNames))
			}
			for i, c := range got {
				if c.Name != tt.wantNames[i] {
					t.Errorf("Apply()[%d] = %q, want %q", i, c.Name, tt.wantNames[i])
				}
			}
		})
	}
}

func TestFilterString(t *testing.T) {
	if got := New().String(); got != "No active filters" {
		t.Errorf("String() = %q", got)
	}

	f := &Filter{Domains: []string{"ai", "web"}, OpenCFPOnly: true}
	want := "Domains: ai, web | Open CFPs only"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
