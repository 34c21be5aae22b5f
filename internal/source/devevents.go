package source

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/confab-dev/confab/internal/conference"
)

// DevEventsURL is the developers.events CFP feed, the primary structured
// source with over a thousand listings.
const DevEventsURL = "https://developers.events/all-cfps.json"

// DevEvents fetches the developers.events all-cfps JSON API.
type DevEvents struct {
	client *Client
	url    string
}

// NewDevEvents creates the developers.events fetcher. An empty url uses the
// production feed.
func NewDevEvents(client *Client, url string) *DevEvents {
	if url == "" {
		url = DevEventsURL
	}
	return &DevEvents{client: client, url: url}
}

// Name implements Source.
func (s *DevEvents) Name() string { return "developers.events" }

type devEventsItem struct {
	Conf struct {
		Name      string  `json:"name"`
		Hyperlink string  `json:"hyperlink"`
		Location  string  `json:"location"`
		Date      []int64 `json:"date"`
	} `json:"conf"`
	Link      string `json:"link"`
	UntilDate int64  `json:"untilDate"`
}

// Fetch implements Source.
func (s *DevEvents) Fetch(ctx context.Context) ([]*conference.Conference, error) {
	var items []devEventsItem
	if err := s.client.GetJSON(ctx, s.url, &items); err != nil {
		return nil, err
	}

	records := make([]*conference.Conference, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Conf.Name)
		if name == "" {
			continue
		}

		var startDate, endDate string
		if len(item.Conf.Date) > 0 {
			startDate = millisToDate(item.Conf.Date[0])
			endDate = startDate
			if len(item.Conf.Date) > 1 {
				endDate = millisToDate(item.Conf.Date[len(item.Conf.Date)-1])
			}
		}

		city, country := parseLocation(item.Conf.Location)

		var cfp *conference.CFP
		if item.Link != "" {
			cfp = &conference.CFP{
				URL:     item.Link,
				EndDate: millisToDate(item.UntilDate),
			}
		}

		records = append(records, &conference.Conference{
			Name:      name,
			URL:       item.Conf.Hyperlink,
			StartDate: startDate,
			EndDate:   endDate,
			Location: conference.Location{
				City:    city,
				Country: country,
				Raw:     item.Conf.Location,
			},
			Online: strings.Contains(strings.ToLower(item.Conf.Location), "online"),
			CFP:    cfp,
			Source: s.Name(),
		})
	}

	return validated(records), nil
}

// millisToDate converts a Unix millisecond timestamp to an ISO date string.
// Zero or negative timestamps map to absent.
func millisToDate(ms int64) string {
	if ms <= 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(conference.ISODate)
}

var cityCountry = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)

// parseLocation splits location strings like "Paris (France)" or
// "Paris, France" into city and country.
func parseLocation(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	if strings.EqualFold(raw, "online") {
		return "Online", ""
	}
	if m := cityCountry.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if i := strings.LastIndex(raw, ","); i != -1 {
		return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:])
	}
	return raw, ""
}
