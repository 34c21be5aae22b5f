package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/confab-dev/confab/internal/conference"
)

// confs.tech community data lives in the tech-conferences/conference-data
// repo as one JSON file per topic per year.
const (
	ConfsTechAPIURL = "https://api.github.com/repos/tech-conferences/conference-data/contents/conferences"
	ConfsTechRawURL = "https://raw.githubusercontent.com/tech-conferences/conference-data/main/conferences"
)

// topicDomains maps confs.tech topic files to the domain enumeration. Topics
// not listed here fall through to "general".
var topicDomains = map[string]string{
	"javascript":    "web",
	"typescript":    "web",
	"css":           "web",
	"php":           "web",
	"ruby":          "web",
	"accessibility": "web",
	"ux":            "web",
	"python":        "software",
	"java":          "software",
	"dotnet":        "software",
	"rust":          "software",
	"cpp":           "software",
	"golang":        "software",
	"scala":         "software",
	"cfml":          "software",
	"performance":   "software",
	"testing":       "software",
	"api":           "software",
	"kotlin":        "mobile",
	"ios":           "mobile",
	"android":       "mobile",
	"devops":        "devops",
	"sre":           "devops",
	"data":          "data",
	"security":      "security",
	"identity":      "security",
	"networking":    "cloud",
	"iot":           "cloud",
	"opensource":    "opensource",
	"product":       "general",
	"leadership":    "general",
	"tech-comm":     "general",
	"general":       "general",
}

// ConfsTech fetches the tech-conferences/conference-data GitHub content tree.
type ConfsTech struct {
	client *Client
	apiURL string
	rawURL string
	years  []int
}

// NewConfsTech creates the confs.tech fetcher. Empty URLs use the GitHub
// endpoints; years selects which per-year directories to walk.
func NewConfsTech(client *Client, apiURL, rawURL string, years []int) *ConfsTech {
	if apiURL == "" {
		apiURL = ConfsTechAPIURL
	}
	if rawURL == "" {
		rawURL = ConfsTechRawURL
	}
	return &ConfsTech{client: client, apiURL: apiURL, rawURL: rawURL, years: years}
}

// Name implements Source.
func (s *ConfsTech) Name() string { return "confs.tech" }

type githubFile struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

type confsTechItem struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Online     bool   `json:"online"`
	CFPURL     string `json:"cfpUrl"`
	CFPEndDate string `json:"cfpEndDate"`
	Twitter    string `json:"twitter"`
}

// Fetch implements Source. A missing year directory is skipped silently; a
// broken topic file only costs that topic.
func (s *ConfsTech) Fetch(ctx context.Context) ([]*conference.Conference, error) {
	var records []*conference.Conference

	for _, year := range s.years {
		var files []githubFile
		if err := s.client.GetJSON(ctx, fmt.Sprintf("%s/%d", s.apiURL, year), &files); err != nil {
			continue
		}

		for _, file := range files {
			if !strings.HasSuffix(file.Name, ".json") {
				continue
			}
			topic := strings.TrimSuffix(file.Name, ".json")

			url := file.DownloadURL
			if url == "" {
				url = fmt.Sprintf("%s/%d/%s", s.rawURL, year, file.Name)
			}

			var items []confsTechItem
			if err := s.client.GetJSON(ctx, url, &items); err != nil {
				continue
			}

			for _, item := range items {
				if item.Name == "" {
					continue
				}
				records = append(records, s.toRecord(item, topic))
			}
		}
	}

	return validated(records), nil
}

func (s *ConfsTech) toRecord(item confsTechItem, topic string) *conference.Conference {
	domain := topicDomains[topic]
	if domain == "" {
		domain = "general"
	}

	endDate := item.EndDate
	if endDate == "" {
		endDate = item.StartDate
	}

	raw := item.City
	switch {
	case item.City != "" && item.Country != "":
		raw = item.City + ", " + item.Country
	case item.City == "":
		raw = item.Country
	}

	var cfp *conference.CFP
	if item.CFPURL != "" {
		cfp = &conference.CFP{URL: item.CFPURL, EndDate: item.CFPEndDate}
	}

	return &conference.Conference{
		Name:      strings.TrimSpace(item.Name),
		URL:       item.URL,
		StartDate: item.StartDate,
		EndDate:   endDate,
		Location: conference.Location{
			City:    item.City,
			Country: item.Country,
			Raw:     raw,
		},
		Online:  item.Online,
		CFP:     cfp,
		Domain:  domain,
		Tags:    []string{topic},
		Twitter: item.Twitter,
		Source:  s.Name(),
	}
}
