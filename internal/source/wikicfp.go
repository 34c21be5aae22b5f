package source

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/confab-dev/confab/internal/conference"
)

// WikiCFPURL is the WikiCFP site root.
const WikiCFPURL = "http://www.wikicfp.com"

// wikiCFPCategories are the AI/ML category pages worth polling.
var wikiCFPCategories = []string{
	"machine learning",
	"artificial intelligence",
	"deep learning",
	"computer vision",
	"natural language processing",
}

// WikiCFP scrapes AI/ML call-for-papers listings from WikiCFP category pages.
// Only names and CFP links are available on the listing page; dates would
// require a per-event fetch and stay absent.
type WikiCFP struct {
	client  *Client
	baseURL string
	minYear int
}

// NewWikiCFP creates the WikiCFP fetcher. Listings older than minYear are
// skipped; zero defaults to 2025.
func NewWikiCFP(client *Client, baseURL string, minYear int) *WikiCFP {
	if baseURL == "" {
		baseURL = WikiCFPURL
	}
	if minYear == 0 {
		minYear = 2025
	}
	return &WikiCFP{client: client, baseURL: baseURL, minYear: minYear}
}

// Name implements Source.
func (s *WikiCFP) Name() string { return "wikicfp" }

var (
	wikiCFPEventLink = regexp.MustCompile(`event\.showcfp\?eventid=`)
	wikiCFPYear      = regexp.MustCompile(`20\d{2}`)
)

// Fetch implements Source. A failing category page only costs that category.
func (s *WikiCFP) Fetch(ctx context.Context) ([]*conference.Conference, error) {
	var records []*conference.Conference
	seen := make(map[string]bool)

	var lastErr error
	for _, category := range wikiCFPCategories {
		pageURL := fmt.Sprintf("%s/cfp/call?conference=%s", s.baseURL, url.QueryEscape(category))
		doc, err := s.client.GetDocument(ctx, pageURL)
		if err != nil {
			lastErr = err
			continue
		}
		records = append(records, s.parseCategory(doc, category, seen)...)
	}

	if len(records) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return validated(records), nil
}

func (s *WikiCFP) parseCategory(doc *goquery.Document, category string, seen map[string]bool) []*conference.Conference {
	var records []*conference.Conference

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || !wikiCFPEventLink.MatchString(href) {
			return
		}

		name := strings.TrimSpace(sel.Text())
		if name == "" {
			return
		}

		confURL := href
		if !strings.HasPrefix(confURL, "http") {
			confURL = s.baseURL + confURL
		}
		if seen[confURL] {
			return
		}
		seen[confURL] = true

		// Skip past editions when the name carries a year.
		if m := wikiCFPYear.FindString(name); m != "" {
			if year, err := strconv.Atoi(m); err == nil && year < s.minYear {
				return
			}
		}

		records = append(records, &conference.Conference{
			Name:   name,
			URL:    confURL,
			CFP:    &conference.CFP{URL: confURL},
			Domain: "ai",
			Tags:   []string{"ai", "ml", strings.ReplaceAll(category, " ", "-")},
			Source: s.Name(),
		})
	})

	return records
}
