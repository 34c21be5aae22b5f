package conference

// Deduplicate collapses records that describe the same conference edition.
// Two records match when they share a normalized name and year, or when
// they share an exact URL for the same edition. The result is stable:
// running Deduplicate over its own output changes nothing.
func Deduplicate(records []*Conference) []*Conference {
	out := make([]*Conference, 0, len(records))
	byKey := make(map[string]int)
	byURL := make(map[string]int)

	reindex := func() {
		byKey = make(map[string]int, len(out))
		byURL = make(map[string]int, len(out))
		for i, c := range out {
			if k := dedupKey(c); k != "" {
				byKey[k] = i
			}
			if c.URL != "" {
				byURL[c.URL] = i
			}
		}
	}

	for _, rec := range records {
		if rec == nil {
			continue
		}

		keyIdx := -1
		if key := dedupKey(rec); key != "" {
			if i, ok := byKey[key]; ok {
				keyIdx = i
			}
		}
		urlIdx := -1
		if rec.URL != "" {
			// A series page shared across editions must not collapse
			// different years into one record.
			if i, ok := byURL[rec.URL]; ok && sameEdition(out[i], rec) {
				urlIdx = i
			}
		}

		switch {
		case keyIdx >= 0 && urlIdx >= 0 && keyIdx != urlIdx:
			// The record bridges two earlier entries. Union them so a
			// second pass cannot find a pairing this one missed.
			out[keyIdx] = merge(out[keyIdx], out[urlIdx])
			out[keyIdx] = merge(out[keyIdx], rec)
			out = append(out[:urlIdx], out[urlIdx+1:]...)
			reindex()
		case keyIdx >= 0:
			out[keyIdx] = merge(out[keyIdx], rec)
			indexEntry(byKey, byURL, out[keyIdx], keyIdx)
		case urlIdx >= 0:
			out[urlIdx] = merge(out[urlIdx], rec)
			indexEntry(byKey, byURL, out[urlIdx], urlIdx)
		default:
			out = append(out, rec)
			indexEntry(byKey, byURL, rec, len(out)-1)
		}
	}
	return out
}

func indexEntry(byKey, byURL map[string]int, c *Conference, idx int) {
	if key := dedupKey(c); key != "" {
		byKey[key] = idx
	}
	if c.URL != "" {
		byURL[c.URL] = idx
	}
}

// sameEdition reports whether two records can describe the same edition:
// their years match, or at least one has no year at all.
func sameEdition(a, b *Conference) bool {
	ya, yb := a.Year(), b.Year()
	return ya == "" || yb == "" || ya == yb
}

func dedupKey(c *Conference) string {
	name := NormalizeName(c.Name)
	if name == "" {
		return ""
	}
	return name + "|" + c.Year()
}
