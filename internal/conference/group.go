package conference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// LabelTBD is the reserved bucket for records without a usable start date.
const LabelTBD = "TBD"

// MonthGroup is one month bucket with its conferences in date order.
type MonthGroup struct {
	Label       string
	Conferences []*Conference
}

// Months is the ordered sequence of month buckets: chronological, TBD last.
// It serializes as a JSON object whose keys keep that order, which encoding/json
// map marshaling would not.
type Months []MonthGroup

// GroupByMonth buckets records by the "Month Year" label of their start date.
// Within a bucket records sort ascending by start date with dateless records
// last (name breaks ties so output is stable). Buckets sort by (year, month)
// with the TBD bucket last regardless of label text.
func GroupByMonth(records []*Conference) Months {
	buckets := make(map[string][]*Conference)
	for _, rec := range records {
		label := MonthLabel(rec.StartDate)
		buckets[label] = append(buckets[label], rec)
	}

	months := make(Months, 0, len(buckets))
	for label, confs := range buckets {
		sort.SliceStable(confs, func(i, j int) bool {
			di, dj := ParseDate(confs[i].StartDate), ParseDate(confs[j].StartDate)
			if di.IsZero() != dj.IsZero() {
				return !di.IsZero()
			}
			if !di.Equal(dj) {
				return di.Before(dj)
			}
			return confs[i].Name < confs[j].Name
		})
		months = append(months, MonthGroup{Label: label, Conferences: confs})
	}

	sort.Slice(months, func(i, j int) bool {
		return labelSortKey(months[i].Label).Before(labelSortKey(months[j].Label))
	})

	return months
}

// labelSortKey turns a bucket label back into a sortable time. TBD and any
// unparseable label sort after every real month.
func labelSortKey(label string) time.Time {
	if label == LabelTBD {
		return time.Date(9999, 12, 1, 0, 0, 0, 0, time.UTC)
	}
	t, err := time.Parse("January 2006", label)
	if err != nil {
		return time.Date(9999, 12, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// Total counts the records across all buckets.
func (m Months) Total() int {
	n := 0
	for _, g := range m {
		n += len(g.Conferences)
	}
	return n
}

// All flattens the buckets back into a single list, preserving order.
func (m Months) All() []*Conference {
	out := make([]*Conference, 0, m.Total())
	for _, g := range m {
		out = append(out, g.Conferences...)
	}
	return out
}

// MarshalJSON emits a JSON object with one key per bucket, in bucket order.
func (m Months) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(g.Conferences)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form back, preserving key order.
func (m *Months) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("months: expected JSON object, got %v", tok)
	}

	groups := Months{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("months: expected string key, got %v", tok)
		}
		var confs []*Conference
		if err := dec.Decode(&confs); err != nil {
			return fmt.Errorf("months: decoding bucket %q: %w", label, err)
		}
		groups = append(groups, MonthGroup{Label: label, Conferences: confs})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = groups
	return nil
}
