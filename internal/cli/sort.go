package cli

import (
	"sort"
	"strings"

	"github.com/confab-dev/confab/internal/conference"
)

// SortOrder represents the available sorting options.
type SortOrder string

const (
	SortByDate   SortOrder = "date"
	SortByName   SortOrder = "name"
	SortByDomain SortOrder = "domain"
)

// sortConferences sorts in place based on the specified order.
func sortConferences(confs []*conference.Conference, order SortOrder) {
	switch order {
	case SortByDate:
		sort.SliceStable(confs, func(i, j int) bool {
			return compareByDate(confs[i], confs[j])
		})
	case SortByName:
		sort.SliceStable(confs, func(i, j int) bool {
			a, b := strings.ToLower(confs[i].Name), strings.ToLower(confs[j].Name)
			if a != b {
				return a < b
			}
			return compareByDate(confs[i], confs[j])
		})
	case SortByDomain:
		sort.SliceStable(confs, func(i, j int) bool {
			if confs[i].Domain != confs[j].Domain {
				return confs[i].Domain < confs[j].Domain
			}
			return compareByDate(confs[i], confs[j])
		})
	}
}

// compareByDate orders dated records chronologically and undated ones last.
func compareByDate(a, b *conference.Conference) bool {
	da := conference.ParseDate(a.StartDate)
	db := conference.ParseDate(b.StartDate)

	if !da.IsZero() && !db.IsZero() {
		if !da.Equal(db) {
			return da.Before(db)
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
	if !da.IsZero() {
		return true
	}
	if !db.IsZero() {
		return false
	}
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}
