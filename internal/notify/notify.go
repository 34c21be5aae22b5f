package notify

import (
	"context"

	"github.com/confab-dev/confab/internal/conference"
)

// Notifier announces the interesting CFPs from a run.
type Notifier interface {
	// NotifyNew announces CFPs that were not in the previous snapshot.
	NotifyNew(ctx context.Context, confs []*conference.Conference) error
	// NotifyClosingSoon reminds about CFPs about to close.
	NotifyClosingSoon(ctx context.Context, confs []*conference.Conference) error
}

// SelectNew returns conferences with an open CFP whose ID is absent from the
// previous snapshot. On a first run previousIDs is empty and every open CFP
// counts as new.
func SelectNew(confs []*conference.Conference, previousIDs map[string]bool) []*conference.Conference {
	var out []*conference.Conference
	for _, c := range confs {
		if !c.HasOpenCFP() {
			continue
		}
		if previousIDs[c.ID] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SelectClosingSoon returns conferences with an open CFP due within seven
// days. Open CFPs without a known deadline are not reminders material.
func SelectClosingSoon(confs []*conference.Conference) []*conference.Conference {
	var out []*conference.Conference
	for _, c := range confs {
		if !c.HasOpenCFP() || c.CFP.DaysRemaining == nil {
			continue
		}
		if d := *c.CFP.DaysRemaining; d > 0 && d <= 7 {
			out = append(out, c)
		}
	}
	return out
}
