package conference

// Stats summarizes one run. Computed after enrichment, never mutated.
type Stats struct {
	Total        int            `json:"total"`
	WithOpenCFP  int            `json:"withOpenCFP"`
	WithLocation int            `json:"withLocation"`
	ByDomain     map[string]int `json:"byDomain"`
}

// ComputeStats aggregates counts over enriched records. Records without a
// domain count under "general".
func ComputeStats(records []*Conference) Stats {
	stats := Stats{ByDomain: make(map[string]int)}
	for _, rec := range records {
		stats.Total++
		if rec.HasOpenCFP() {
			stats.WithOpenCFP++
		}
		if rec.HasCoordinates() {
			stats.WithLocation++
		}
		domain := rec.Domain
		if domain == "" {
			domain = "general"
		}
		stats.ByDomain[domain]++
	}
	return stats
}
