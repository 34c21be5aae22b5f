package source

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/confab-dev/confab/internal/conference"
)

// PapercallURL is the Papercall.io public events directory.
const PapercallURL = "https://www.papercall.io/events"

// Papercall scrapes the Papercall.io events directory. Listings carry a name,
// a CFP link, and at best a freeform location; dates require visiting each
// event page and are left absent.
type Papercall struct {
	client *Client
	url    string
}

// NewPapercall creates the Papercall fetcher.
func NewPapercall(client *Client, url string) *Papercall {
	if url == "" {
		url = PapercallURL
	}
	return &Papercall{client: client, url: url}
}

// Name implements Source.
func (s *Papercall) Name() string { return "papercall" }

var papercallEvent = regexp.MustCompile(`^/[a-z0-9-]+$`)

// Navigation paths that match the event-link shape but are not events.
var papercallNavPaths = map[string]bool{
	"/events":  true,
	"/pricing": true,
	"/about":   true,
	"/contact": true,
}

// Fetch implements Source.
func (s *Papercall) Fetch(ctx context.Context) ([]*conference.Conference, error) {
	doc, err := s.client.GetDocument(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return s.parse(doc), nil
}

func (s *Papercall) parse(doc *goquery.Document) []*conference.Conference {
	var records []*conference.Conference
	seen := make(map[string]bool)

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || papercallNavPaths[href] || !papercallEvent.MatchString(href) {
			return
		}

		text := strings.TrimSpace(sel.Text())
		if len(text) < 3 {
			return
		}

		// Cards read "Event Name - Location".
		name, location := text, ""
		if i := strings.LastIndex(text, " - "); i != -1 {
			name = strings.TrimSpace(text[:i])
			location = strings.TrimSpace(text[i+3:])
		}

		switch strings.ToLower(name) {
		case "pro event", "pricing", "events":
			return
		}

		url := "https://www.papercall.io" + href
		if seen[url] {
			return
		}
		seen[url] = true

		records = append(records, &conference.Conference{
			Name: name,
			URL:  url,
			Location: conference.Location{
				City: location,
				Raw:  location,
			},
			Online: strings.Contains(strings.ToLower(location), "online"),
			CFP:    &conference.CFP{URL: url},
			Source: s.Name(),
		})
	})

	return validated(records)
}
